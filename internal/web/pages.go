package web

// HomePage feeds the welcome page.
type HomePage struct {
	Port int
}

var buttonStates = []string{"default", "hover", "active", "focus", "disabled"}

type ButtonVariant struct {
	State     string
	Label     string
	LeftIcon  string
	RightIcon string
}

type ButtonRow struct {
	State    string
	Variants []ButtonVariant
}

// ButtonDemo lists every state of the brand button with and without icons.
func ButtonDemo() []ButtonRow {
	rows := make([]ButtonRow, 0, len(buttonStates))
	for _, state := range buttonStates {
		rows = append(rows, ButtonRow{
			State: state,
			Variants: []ButtonVariant{
				{State: state, Label: "Button"},
				{State: state, Label: "Button", LeftIcon: "+"},
				{State: state, Label: "Button", RightIcon: "→"},
				{State: state, Label: "Button", LeftIcon: "+", RightIcon: "→"},
			},
		})
	}
	return rows
}
