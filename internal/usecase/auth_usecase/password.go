package auth

import "golang.org/x/crypto/bcrypt"

// bcryptが受け付ける入力の上限。超えた分は切り詰める。
const maxPasswordLength = 72

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 平文パスワードとハッシュの照合。
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化。入力は72バイトに切り詰めてから渡す
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword(truncate(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// Hashと同じ切り詰めをしてから比較する。比較自体はbcryptが定数時間で行う
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), truncate(plain))
	return err == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordLength {
		b = b[:maxPasswordLength]
	}
	return b
}
