package services

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8

// Argon2Params - параметры Argon2id. Memory задается в KiB.
type Argon2Params struct {
	Time        uint32
	MemoryKiB   uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params - t=3, m=15 MiB, p=1, соль 16 байт, ключ 32 байта.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:        3,
		MemoryKiB:   15 * 1024,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}
