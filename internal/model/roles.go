package model

import "github.com/mj1618/axsearch/internal/axsearch"

// RoleMap maps macOS AXRole values to compact role codes.
var RoleMap = map[string]axsearch.Role{
	"AXButton":      axsearch.RoleButton,
	"AXPopUpButton": axsearch.RoleButton,
	"AXMenuButton":  axsearch.RoleButton,
	"AXStaticText":  axsearch.RoleStaticText,
	"AXLink":        axsearch.RoleLink,
	"AXImage":       axsearch.RoleImage,
	"AXTextField":   axsearch.RoleInput,
	"AXTextArea":    axsearch.RoleInput,
	"AXSearchField": axsearch.RoleInput,
	"AXCheckBox":    axsearch.RoleCheckbox,
	"AXSwitch":      axsearch.RoleToggle,
	"AXRadioButton": axsearch.RoleRadio,
	"AXRadioGroup":  axsearch.RoleRadioGroup,
	"AXHeading":     axsearch.RoleHeading,
	"AXBlockquote":  axsearch.RoleBlockquote,
	"AXArticle":     axsearch.RoleArticle,
	"AXLandmark":    axsearch.RoleLandmark,
	"AXMenu":        axsearch.RoleMenu,
	"AXMenuBar":     axsearch.RoleMenu,
	"AXMenuItem":    axsearch.RoleMenuItem,
	"AXTabGroup":    axsearch.RoleTabGroup,
	"AXList":        axsearch.RoleList,
	"AXOutline":     axsearch.RoleOutline,
	"AXTable":       axsearch.RoleTable,
	"AXGrid":        axsearch.RoleTable,
	"AXRowGroup":    axsearch.RoleRowGroup,
	"AXRow":         axsearch.RoleRow,
	"AXCell":        axsearch.RoleCell,
	"AXGroup":       axsearch.RoleGroup,
	"AXSplitGroup":  axsearch.RoleGroup,
	"AXScrollArea":  axsearch.RoleScrollArea,
	"AXToolbar":     axsearch.RoleToolbar,
	"AXWebArea":     axsearch.RoleWebArea,
	"AXWindow":      axsearch.RoleWindow,
}

// knownRoles is the set of compact codes accepted as-is.
var knownRoles = func() map[axsearch.Role]bool {
	m := make(map[axsearch.Role]bool, len(RoleMap))
	for _, r := range RoleMap {
		m[r] = true
	}
	m[axsearch.RoleOther] = true
	return m
}()

// MapRole converts a raw accessibility role or compact code to a compact
// code. Unknown roles map to "other".
func MapRole(role string) axsearch.Role {
	if short, ok := RoleMap[role]; ok {
		return short
	}
	if knownRoles[axsearch.Role(role)] {
		return axsearch.Role(role)
	}
	return axsearch.RoleOther
}

// roleTraits lists the structural traits implied by each role.
var roleTraits = map[axsearch.Role][]axsearch.Trait{
	axsearch.RoleBlockquote: {axsearch.TraitBlockquote},
	axsearch.RoleButton:     {axsearch.TraitButton, axsearch.TraitControl},
	axsearch.RoleCheckbox:   {axsearch.TraitCheckbox, axsearch.TraitControl},
	axsearch.RoleHeading:    {axsearch.TraitHeading},
	axsearch.RoleImage:      {axsearch.TraitImage},
	axsearch.RoleInput:      {axsearch.TraitTextControl, axsearch.TraitControl},
	axsearch.RoleLandmark:   {axsearch.TraitLandmark},
	axsearch.RoleLink:       {axsearch.TraitLink},
	axsearch.RoleList:       {axsearch.TraitList},
	axsearch.RoleMenuItem:   {axsearch.TraitControl},
	axsearch.RoleOutline:    {axsearch.TraitOutline},
	axsearch.RoleRadio:      {axsearch.TraitRadioButton, axsearch.TraitControl},
	axsearch.RoleRadioGroup: {axsearch.TraitRadioGroup},
	axsearch.RoleStaticText: {axsearch.TraitStaticText},
	axsearch.RoleTable:      {axsearch.TraitTable},
	axsearch.RoleToggle:     {axsearch.TraitCheckbox, axsearch.TraitControl},
	axsearch.RoleWebArea:    {axsearch.TraitWebArea},
}

// landmarkSubroles are AX subroles that make any node a landmark region.
var landmarkSubroles = map[string]bool{
	"AXLandmarkBanner":        true,
	"AXLandmarkNavigation":    true,
	"AXLandmarkMain":          true,
	"AXLandmarkContentInfo":   true,
	"AXLandmarkComplementary": true,
	"AXLandmarkSearch":        true,
	"AXLandmarkRegion":        true,
	"AXLandmarkForm":          true,
}
