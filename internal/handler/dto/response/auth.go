package response

import "rentledger/internal/usecase/queries"

type LoginResponse struct {
	AccessToken  string                      `json:"accessToken"`
	RefreshToken string                      `json:"refreshToken"`
	User         *queries.AuthorizedUserView `json:"user"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
