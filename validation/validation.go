package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/meghashyamc/wordseek/logger"
	"github.com/meghashyamc/wordseek/services/search"
)

const (
	folderTags  = "folder_exists,is_folder,writable_folder"
	keywordTags = "valid_keyword"
)

var (
	ErrPathNotExist    = errors.New("path does not exist")
	ErrNotADirectory   = errors.New("path is not a folder")
	ErrNoWriteAccess   = errors.New("no write access to folder")
	ErrKeywordTooShort = search.ErrKeywordTooShort
)

type Validator struct {
	validator                *validator.Validate
	logger                   logger.Logger
	tagValidationDetailsOnce sync.Once
	tagValidationDetailsMap  map[string]tagValidationDetails
}

type tagValidationDetails struct {
	validatorFunc validator.Func
	err           error
}

func New(logger logger.Logger) (*Validator, error) {
	validator := &Validator{validator: validator.New(), logger: logger}
	validator.validator.RegisterTagNameFunc(useJSONFieldNames)
	if err := validator.registerCustomValidatorsForTags(); err != nil {
		return nil, err
	}

	return validator, nil
}

func (v *Validator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		v.logger.Warn("validation failed", "err", err.Error())
		return v.translate(err)
	}
	return nil
}

// ValidateFolder checks that folderPath exists, is a folder and can be
// written to.
func (v *Validator) ValidateFolder(folderPath string) error {
	if err := v.validator.Var(folderPath, folderTags); err != nil {
		v.logger.Warn("folder validation failed", "path", folderPath, "err", err.Error())
		return v.translate(err)
	}
	return nil
}

func (v *Validator) ValidateKeyword(keyword string) error {
	if err := v.validator.Var(keyword, keywordTags); err != nil {
		v.logger.Warn("keyword validation failed", "err", err.Error())
		return v.translate(err)
	}
	return nil
}

func (v *Validator) translate(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {

		tagValidationDetails, ok := v.getTagValidationDetails()[validationErrs[0].Tag()]
		if ok {
			return tagValidationDetails.err
		}

		if validationErrs[0].Tag() == "required" {
			return fmt.Errorf("missing required field '%s'", validationErrs[0].Field())
		}
	}
	return err
}

func (v *Validator) getTagValidationDetails() map[string]tagValidationDetails {
	v.tagValidationDetailsOnce.Do(func() {
		v.tagValidationDetailsMap = map[string]tagValidationDetails{
			"folder_exists":   {validatorFunc: v.folderExists, err: ErrPathNotExist},
			"is_folder":       {validatorFunc: v.isFolder, err: ErrNotADirectory},
			"writable_folder": {validatorFunc: v.isWritableFolder, err: ErrNoWriteAccess},
			"valid_keyword":   {validatorFunc: v.isValidKeyword, err: ErrKeywordTooShort},
		}
	})
	return v.tagValidationDetailsMap
}

func (v *Validator) registerCustomValidatorsForTags() error {

	tagValidationDetailsMap := v.getTagValidationDetails()

	for tag, tagValidationDetails := range tagValidationDetailsMap {
		if err := v.validator.RegisterValidation(tag, tagValidationDetails.validatorFunc); err != nil {
			v.logger.Error("failed to register customer validator function", "err", err.Error())
			return err
		}
	}
	return nil
}

func useJSONFieldNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func (v *Validator) folderExists(fl validator.FieldLevel) bool {
	folderPath := fl.Field().String()
	if strings.TrimSpace(folderPath) == "" {
		return false
	}

	if strings.Contains(folderPath, "\x00") {
		v.logger.Warn("folder path has null byte", "path", folderPath)
		return false
	}

	if _, err := os.Stat(folderPath); err != nil {
		v.logger.Info("path does not exist", "path", folderPath, "err", err.Error())
		return false
	}

	return true
}

func (v *Validator) isFolder(fl validator.FieldLevel) bool {
	info, err := os.Stat(fl.Field().String())
	if err != nil {
		return false
	}
	return info.IsDir()
}

// isWritableFolder verifies write access by creating and removing a probe
// file rather than trusting permission bits.
func (v *Validator) isWritableFolder(fl validator.FieldLevel) bool {
	folderPath := fl.Field().String()
	probePath := filepath.Join(folderPath, fmt.Sprintf("wordseek_access_%s.tmp", uuid.New().String()))

	if err := os.WriteFile(probePath, []byte("test"), 0o600); err != nil {
		v.logger.Info("no write access to folder", "path", folderPath, "err", err.Error())
		return false
	}

	if err := os.Remove(probePath); err != nil {
		v.logger.Warn("failed to remove access probe file", "path", probePath, "err", err.Error())
		return false
	}

	return true
}

func (v *Validator) isValidKeyword(fl validator.FieldLevel) bool {
	return search.ValidKeyword(fl.Field().String())
}
