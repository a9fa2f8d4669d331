package spec

import "github.com/zx06/picred/internal/errors"

// FlagSpec 描述一个命令行参数及其对应的环境变量。
type FlagSpec struct {
	Name        string `json:"name" yaml:"name"`
	Shorthand   string `json:"shorthand,omitempty" yaml:"shorthand,omitempty"`
	Env         string `json:"env,omitempty" yaml:"env,omitempty"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type CommandSpec struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Flags       []FlagSpec `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Spec 是 `picred spec` 输出的机器可读工具说明。
type Spec struct {
	SchemaVersion int           `json:"schema_version" yaml:"schema_version"`
	Commands      []CommandSpec `json:"commands" yaml:"commands"`
	CredentialEnv []string      `json:"credential_env" yaml:"credential_env"`
	ErrorCodes    []errors.Code `json:"error_codes" yaml:"error_codes"`
}
