package config

import (
	"blogcore/internal/blog/domain/services"
)

// PasswordConfig содержит параметры Argon2id.
type PasswordConfig struct {
	Time        uint32 `yaml:"time" env:"BLOG_PASSWORD_TIME" env-default:"3"`
	MemoryKiB   uint32 `yaml:"memory_kib" env:"BLOG_PASSWORD_MEMORY_KIB" env-default:"15360"`
	Parallelism uint8  `yaml:"parallelism" env:"BLOG_PASSWORD_PARALLELISM" env-default:"1"`
	SaltLength  uint32 `yaml:"salt_length" env:"BLOG_PASSWORD_SALT_LENGTH" env-default:"16"`
	KeyLength   uint32 `yaml:"key_length" env:"BLOG_PASSWORD_KEY_LENGTH" env-default:"32"`
}

// Params возвращает параметры для сервиса паролей.
func (p *PasswordConfig) Params() services.Argon2Params {
	return services.Argon2Params{
		Time:        p.Time,
		MemoryKiB:   p.MemoryKiB,
		Parallelism: p.Parallelism,
		SaltLength:  p.SaltLength,
		KeyLength:   p.KeyLength,
	}
}
