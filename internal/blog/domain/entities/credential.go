package entities

import "strings"

// CredentialKind - формат хранения пароля.
type CredentialKind int

// Форматы хранения. Legacy - исторический открытый текст, Hashed - строка Argon2id в формате PHC.
const (
	CredentialLegacy CredentialKind = iota
	CredentialHashed
)

// HashedCredentialMarker отличает хэш от открытого текста.
const HashedCredentialMarker = "$argon2id$"

// Credential - сохраненное представление пароля.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// ParseCredential определяет формат сохраненной строки по маркеру.
func ParseCredential(stored string) Credential {
	if strings.HasPrefix(stored, HashedCredentialMarker) {
		return Credential{Kind: CredentialHashed, Value: stored}
	}
	return Credential{Kind: CredentialLegacy, Value: stored}
}

// HashedCredential оборачивает строку, полученную от PasswordService.
func HashedCredential(encoded string) Credential {
	return Credential{Kind: CredentialHashed, Value: encoded}
}

// IsLegacy сообщает, что пароль еще хранится открытым текстом.
func (c Credential) IsLegacy() bool {
	return c.Kind == CredentialLegacy
}

// String не раскрывает legacy-пароль в логах.
func (c Credential) String() string {
	if c.IsLegacy() {
		return "legacy(***)"
	}
	return "hashed"
}
