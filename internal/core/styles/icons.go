package styles

// Nerd font glyphs used by the workbench.
var (
	IconChecked   = "\uf14a"
	IconUnchecked = "\uf096"
	IconSortAsc   = "\uf0de"
	IconSortDesc  = "\uf0dd"
	IconCompare   = "\uf24e"
	IconExport    = "\uf1c3"
	IconFile      = "\uf15b"
	IconLink      = "\uf0c1"
	IconUser      = "\uf007"
	IconClock     = "\uf017"
	IconInfo      = "\uf05a"
	IconSuccess   = "\uf058"
	IconWarning   = "\uf071"
	IconError     = "\uf057"
)
