package config

// InputConfig maps browser actions to key bindings. Navigation actions accept
// several bindings each (arrows plus letters); one-shot actions take a single key.
type InputConfig struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	JumpUp   []string `toml:"jump_up"`
	JumpDown []string `toml:"jump_down"`
	PageUp   []string `toml:"page_up"`
	PageDown []string `toml:"page_down"`
	Toggle   []string `toml:"toggle"`

	ToggleAll string `toml:"toggle_all"`
	Images    string `toml:"images"`
	Sort      string `toml:"sort"`
	Generate  string `toml:"generate"`
	Delete    string `toml:"delete"`
	Update    string `toml:"update"`
	Exit      string `toml:"exit"`
	Continue  string `toml:"continue"`
}

// Config is the runtime application configuration loaded from config.toml
// in the data directory, with environment overrides applied on top.
type Config struct {
	Theme         string      `toml:"theme"`
	DataDir       string      `toml:"data_dir"`
	APIURL        string      `toml:"api_url"`
	VisibleItems  int         `toml:"visible_items"`
	ImageHeight   int         `toml:"image_height"`
	ImagesDefault bool        `toml:"images_default"`
	Keys          InputConfig `toml:"keys"`
}
