package state

// ConfigField is the focused element of the ghost configuration form.
type ConfigField int

const (
	ConfigSleep ConfigField = iota
	ConfigJitter
	ConfigSubmit
)

const (
	DefaultSleepInput  = "10"
	DefaultJitterInput = "5"
)

// ConfigState is the beacon timing form. Both numbers are kept as raw text
// and only parsed on submit.
type ConfigState struct {
	SelectedField ConfigField
	SleepInput    string
	JitterInput   string
}

func NewConfigState() ConfigState {
	return ConfigState{
		SelectedField: ConfigSleep,
		SleepInput:    DefaultSleepInput,
		JitterInput:   DefaultJitterInput,
	}
}

func (c *ConfigState) NextField() {
	switch c.SelectedField {
	case ConfigSleep:
		c.SelectedField = ConfigJitter
	case ConfigJitter:
		c.SelectedField = ConfigSubmit
	default:
		c.SelectedField = ConfigSleep
	}
}

func (c *ConfigState) PrevField() {
	switch c.SelectedField {
	case ConfigSleep:
		c.SelectedField = ConfigSubmit
	case ConfigJitter:
		c.SelectedField = ConfigSleep
	default:
		c.SelectedField = ConfigJitter
	}
}

// FocusedInput returns the text buffer under focus, or nil on Submit.
func (c *ConfigState) FocusedInput() *string {
	switch c.SelectedField {
	case ConfigSleep:
		return &c.SleepInput
	case ConfigJitter:
		return &c.JitterInput
	default:
		return nil
	}
}
