// Package repository handles all interactions with the database.
//
// It contains the SQL statements for each table and the methods that run
// them through the database.Gateway, abstracting SQL away from the service
// layer. Every statement binds its parameters positionally.
package repository

import (
	"github.com/deppfellow/lotto-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users      *UserRepository
	LottoDraws *LottoDrawRepository
}

// NewRepositories builds every repository on top of the shared store
// handle held by s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(s.DB),
		LottoDraws: NewLottoDrawRepository(s.DB),
	}
}
