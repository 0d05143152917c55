package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName は識別トークンを入れるcookie名。
const CookieName = "user_id"

// TokenCodec はcookie値とユーザーIDの相互変換。
// Decodeできないトークンは「未ログイン」として扱う（エラーにしない）。
type TokenCodec interface {
	Encode(userID int64) (string, error)
	Decode(token string) (int64, bool)
}

// PlainCodec は観測された方式そのまま：cookie値 = ユーザーIDの10進文字列。
// 署名も期限も無い。署名つきへの移行はSignedCodecで選べる。
type PlainCodec struct{}

func NewPlainCodec() *PlainCodec {
	return &PlainCodec{}
}

func (c *PlainCodec) Encode(userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("invalid user id")
	}
	return strconv.FormatInt(userID, 10), nil
}

func (c *PlainCodec) Decode(token string) (int64, bool) {
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// SignedCodec はHS256署名と期限つきのトークン。
// SESSION_MODE=signed のときだけ使われる。
type SignedCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSignedCodec(secret []byte, ttl time.Duration) *SignedCodec {
	return &SignedCodec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *SignedCodec) Encode(userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("invalid user id")
	}

	now := c.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

func (c *SignedCodec) Decode(token string) (int64, bool) {
	//期限は自前の時計で検証するので、パーサの検証は止めておく
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	parsed, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || parsed == nil || !parsed.Valid {
		return 0, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	if !claims.VerifyExpiresAt(c.now().Unix(), true) {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
