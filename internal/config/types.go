package config

// File 表示 picred.yaml 的配置结构。
// 约束：配置优先级为 CLI > ENV > Config > 默认值。
type File struct {
	Service        string `yaml:"service"`         // keyring service name
	DefaultAccount string `yaml:"default_account"` // 未指定 --account 时使用
	BaseURL        string `yaml:"base_url"`        // request 命令中相对路径的基地址
	Format         string `yaml:"format"`
}

type Resolved struct {
	ConfigPath string
	Service    string
	Account    string
	BaseURL    string
	Format     string
}

type Options struct {
	// ConfigPath: 若非空，则只读取该文件（不存在报错）。
	ConfigPath string

	// CLI
	CLIAccount    string
	CLIAccountSet bool
	CLIService    string
	CLIServiceSet bool
	CLIFormat     string
	CLIFormatSet  bool

	// ENV（由调用方注入，便于测试）
	EnvService string // KEYRING_SERVICE
	EnvAccount string // KEYRING_ACCOUNT
	EnvFormat  string // PICRED_FORMAT

	// HomeDir 用于默认路径计算（为空则自动探测）。
	HomeDir string
	// WorkDir 用于默认路径（为空则使用进程当前工作目录）。
	WorkDir string
}
