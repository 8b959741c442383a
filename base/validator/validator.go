package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.EqualFold(checksum, address)
}

// IsEnsName reports names the ens resolver should be asked about
func IsEnsName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) > len(".eth") && strings.HasSuffix(strings.ToLower(name), ".eth")
}

func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("tokenid", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if len(s) == 0 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// Var validates a single value against a tag, e.g. "required,eth_addr"
func (v *CustomValidator) Var(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}
