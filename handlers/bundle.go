package handlers

import (
	userRepo "edspire/database/repository/user"
)

// HandlerBundle aggregates the HTTP handlers and the repositories the route
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Availability *AvailabilityHandler
	Tutor        *TutorHandler
	User         *UserHandler
	Wallet       *WalletHandler
	Session      *SessionHandler
	Assistant    *AssistantHandler
}
