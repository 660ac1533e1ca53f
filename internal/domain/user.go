package domain

import "time"

// User описывает зарегистрированного пользователя голосовой верификации
type User struct {
	ID        int64
	Name      string
	Surname   string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewUser(name, surname, email string) *User {
	return &User{
		Name:    name,
		Surname: surname,
		Email:   email,
	}
}
