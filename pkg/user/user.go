package user

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/argon2"

	"ktap/pkg/content"
)

const saltLen = 8

type User struct {
	ID       int64
	Email    string
	Name     string
	Avatar   string
	Password []byte
	Balance  int64
	IsAdmin  bool
}

func (u *User) Content() *content.User {
	return &content.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Avatar:  u.Avatar,
		Balance: u.Balance,
		IsAdmin: u.IsAdmin,
	}
}

func (u *User) Author() *content.Author {
	return &content.Author{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

func HashPassword(plainPassword string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return hashPass(salt, plainPassword), nil
}

func CheckPassword(passHash []byte, plainPassword string) bool {
	if len(passHash) <= saltLen {
		return false
	}
	salt := make([]byte, saltLen)
	copy(salt, passHash[:saltLen])
	return bytes.Equal(hashPass(salt, plainPassword), passHash)
}

func hashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), salt, 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}
