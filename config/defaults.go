package config

// DefaultEndpoint is the Magic Loops loop the chat talks to unless
// config.toml or MAGICCHAT_ENDPOINT says otherwise.
const DefaultEndpoint = "https://magicloops.dev/api/loop/b9cf6f62-fcf8-4cd6-abdf-24335a411905/run"

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/magicchat",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		MagicLoops: MagicLoopsConfig{
			Endpoint:       DefaultEndpoint,
			TimeoutSeconds: 0,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# magicchat System Configuration
# Location: ~/.config/magicchat/settings.toml
# This file uses TOML format: https://toml.io

# Directory where config.toml, keybindings.toml and debug.log are stored
data_directory = "~/.local/share/magicchat"
`
}

func GenerateUserConfigTemplate() string {
	return `# magicchat User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[magicloops]
# Magic Loops run URL. Every message is POSTed here together with the
# conversation history.
endpoint = "` + DefaultEndpoint + `"

# Seconds to wait for a reply before giving up (0 = wait forever)
timeout_seconds = 0
`
}
