package auth

// Claims mínimos que os handlers precisam para identificar quem chama.
type Claims struct {
	UserID string
	Nome   string
}
