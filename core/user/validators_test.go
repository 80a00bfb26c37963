package user

import (
	"testing"

	localeen "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Lemoonautt/Unigestion-PJ/core"
)

func newTestValidator() *validator.Validate {
	lang := localeen.New()
	uni := ut.New(lang, lang)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func failedTags(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	return tags
}

func TestPasswordPolicy(t *testing.T) {
	validate := newTestValidator()

	tests := []struct {
		name    string
		usr     NewUser
		wantTag string
	}{
		{
			name:    "too short",
			usr:     NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "Ab1!", PasswordConfirm: "Ab1!"},
			wantTag: pwdMinLenTag,
		},
		{
			name:    "whitespace",
			usr:     NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "with spaces1", PasswordConfirm: "with spaces1"},
			wantTag: pwdNoSpaceTag,
		},
		{
			name:    "all numeric",
			usr:     NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "1234567890", PasswordConfirm: "1234567890"},
			wantTag: pwdNotAllNumTag,
		},
		{
			name:    "similar to email",
			usr:     NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "ana@test.test1", PasswordConfirm: "ana@test.test1"},
			wantTag: pwdAttrSimTag,
		},
		{
			name:    "mismatched confirmation",
			usr:     NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "S3cretPwd!", PasswordConfirm: "other"},
			wantTag: "eqfield",
		},
		{
			name: "valid",
			usr:  NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "S3cretPwd!", PasswordConfirm: "S3cretPwd!"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.usr)
			if tt.wantTag == "" {
				if err != nil {
					t.Errorf("Struct() failed: %v", err)
				}
				return
			}
			var found bool
			for _, tag := range failedTags(err) {
				if tag == tt.wantTag {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Struct() tags = %v, want %q", failedTags(err), tt.wantTag)
			}
		})
	}
}

func TestUpdateUserSkipsEmptyPassword(t *testing.T) {
	validate := newTestValidator()
	if err := validate.Struct(UpdateUser{Name: "Ana"}); err != nil {
		t.Errorf("Struct() failed: %v", err)
	}
}

func TestAllRolesValidation(t *testing.T) {
	validate := newTestValidator()

	usr := NewUser{Name: "Ana Rojas", Email: "ana@test.test", Password: "S3cretPwd!", PasswordConfirm: "S3cretPwd!", Roles: []string{"superuser:"}}
	err := validate.Struct(usr)
	var found bool
	for _, tag := range failedTags(err) {
		if tag == allRolesTag {
			found = true
		}
	}
	if !found {
		t.Errorf("Struct() tags = %v, want %q", failedTags(err), allRolesTag)
	}

	usr.Roles = []string{RoleAdmin, RoleStudent}
	if err := validate.Struct(usr); err != nil {
		t.Errorf("Struct() failed: %v", err)
	}
}
