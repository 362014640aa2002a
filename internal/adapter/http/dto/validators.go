package dto

import (
	"encoding/hex"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex32", validateHex32)
		_ = v.RegisterValidation("base58_32", validateBase58Key)
	}
}

// validateHex32 accepts exactly 32 bytes of hex (64 characters).
func validateHex32(fl validator.FieldLevel) bool {
	raw, err := hex.DecodeString(fl.Field().String())
	return err == nil && len(raw) == 32
}

// validateBase58Key accepts a base58 string decoding to 32 bytes, the
// wire format for chain addresses and public keys.
func validateBase58Key(fl validator.FieldLevel) bool {
	raw, err := base58.Decode(fl.Field().String())
	return err == nil && len(raw) == 32
}

// DecodeHex32 parses a validated 64-character hex field.
func DecodeHex32(s string) [32]byte {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err == nil && len(raw) == 32 {
		copy(out[:], raw)
	}
	return out
}

// EncodeHex32 renders 32 bytes as the hex wire format.
func EncodeHex32(b [32]byte) string {
	return hex.EncodeToString(b[:])
}
