package levels

import "github.com/stratobim/ifcexport/model"

// baseLevelSlots lists, per element kind, the parameter slots that can name
// the element's base level, in priority order. The first slot that exists
// and holds a valid level identity wins.
var baseLevelSlots = map[model.Kind][]string{
	model.KindWall: {model.ParamWallBase},
	model.KindFamilyInstance: {
		model.ParamBaseLevel,
		model.ParamScheduleLevel,
		model.ParamReferenceLevel,
	},
	model.KindTruss:         {model.ParamTrussLevel},
	model.KindStair:         {model.ParamStairBase},
	model.KindLegacyStair:   {model.ParamStairBase},
	model.KindExtrusionRoof: {model.ParamRoofBase},
}

// mepCurveKinds are the kinds that expose a reference level directly.
var mepCurveKinds = map[model.Kind]bool{
	model.KindDuct:      true,
	model.KindPipe:      true,
	model.KindCableTray: true,
	model.KindConduit:   true,
}

// ResolveBaseLevel determines the level an element is anchored to.
//
// View-specific elements resolve through the view-to-level map and bypass
// all other checks. Otherwise the kind's prioritized slots are evaluated
// (family instances consult their top-level containing instance first),
// then the MEP reference level, then the element's generic level attribute.
//
// The resolver never fails: absence of a result is model.InvalidID, which
// callers must treat as "no base level known".
func ResolveBaseLevel(m model.Model, e model.Element) model.ID {
	if viewID := e.ViewID(); viewID.Valid() {
		if levelID, ok := m.ViewLevel(viewID); ok {
			return levelID
		}
		return model.InvalidID
	}

	target := e
	if e.Kind() == model.KindFamilyInstance {
		if superID := e.SuperInstanceID(); superID.Valid() {
			if super, ok := m.Element(superID); ok {
				target = super
			}
		}
	}

	if slots, ok := baseLevelSlots[target.Kind()]; ok {
		if id, found := firstValidLevel(target, slots); found {
			return id
		}
	}

	if mepCurveKinds[e.Kind()] {
		if id, found := firstValidLevel(e, []string{model.ParamReferenceLevel}); found {
			return id
		}
	}

	// May still be InvalidID; the caller owns that fallback.
	return e.LevelID()
}

// firstValidLevel evaluates slots in order and returns the first one that
// both exists and holds a valid level identity.
func firstValidLevel(e model.Element, slots []string) (model.ID, bool) {
	for _, slot := range slots {
		if id, ok := e.ParamLevelID(slot); ok && id.Valid() {
			return id, true
		}
	}
	return model.InvalidID, false
}
