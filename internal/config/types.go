package config

// Config is the top-level site configuration, corresponding to labsite.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	BaseURL         string   `yaml:"base_url" koanf:"base_url"`
	SiteName        string   `yaml:"site_name" koanf:"site_name"`
	RedirectPath    string   `yaml:"redirect_path" koanf:"redirect_path"`
	InfoPath        string   `yaml:"info_path" koanf:"info_path"`
	ContentDir      string   `yaml:"content_dir" koanf:"content_dir"`
	ContentInclude  []string `yaml:"content_include" koanf:"content_include"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir"`
	SessionCookie   string   `yaml:"session_cookie" koanf:"session_cookie"`
	SessionMaxIdle  string   `yaml:"session_max_idle" koanf:"session_max_idle"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ExportDir       string   `yaml:"export_dir" koanf:"export_dir"`
	LogLevel        string   `yaml:"log_level" koanf:"log_level"`
}
