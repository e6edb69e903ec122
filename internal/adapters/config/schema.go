package config

// Monofile represents the structure of the optional mono.yaml settings file.
type Monofile struct {
	Parallelism    int         `yaml:"parallelism"`
	PackageManager string      `yaml:"packageManager"`
	Validate       ValidateDTO `yaml:"validate"`
}

// ValidateDTO holds the settings of the validate command.
type ValidateDTO struct {
	Skip []string `yaml:"skip"`
}
