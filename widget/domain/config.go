package domain

const (
	DefaultUserLabel = "root"
	DefaultHostLabel = "homoloquax"
	DefaultHomeToken = "~"
)

type PromptConfig struct {
	UserLabel string
	HostLabel string
	HomeToken string
}

func NewPromptConfig(userLabel, hostLabel, homeToken string) PromptConfig {
	c := PromptConfig{
		UserLabel: userLabel,
		HostLabel: hostLabel,
		HomeToken: homeToken,
	}
	if c.UserLabel == "" {
		c.UserLabel = DefaultUserLabel
	}
	if c.HostLabel == "" {
		c.HostLabel = DefaultHostLabel
	}
	if c.HomeToken == "" {
		c.HomeToken = DefaultHomeToken
	}
	return c
}

func DefaultPromptConfig() PromptConfig {
	return NewPromptConfig("", "", "")
}

// Label is the fixed "user@host" part of every prompt line.
func (c PromptConfig) Label() string {
	return c.UserLabel + "@" + c.HostLabel
}

// Prompt renders the text preceding the input on a prompt line.
func (c PromptConfig) Prompt(path string) string {
	return c.Label() + ":" + path + "$ "
}
