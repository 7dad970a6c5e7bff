package domain

import "strings"

// Роли пользователей, которые выдает backend.
const (
	RoleAdmin = "ADMIN"
	RoleAgent = "AGENT"
	RoleUser  = "USER"
)

// User - профиль авторизованного пользователя, сохраненный при логине.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	AgentID *int64 `json:"agentId,omitempty"`
}

// Session - токен и профиль. Создается вне портала, здесь только читается.
type Session struct {
	Token string
	User  User
}

// HasRole сравнивает роль без учета регистра.
func (s *Session) HasRole(role string) bool {
	return strings.EqualFold(strings.TrimSpace(s.User.Role), role)
}

// DisplayName возвращает имя или запасное значение.
func (u User) DisplayName(fallback string) string {
	if strings.TrimSpace(u.Name) == "" {
		return fallback
	}
	return u.Name
}
