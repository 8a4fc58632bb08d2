package dto

type LikesResponse struct {
	Likes int64 `json:"likes"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
