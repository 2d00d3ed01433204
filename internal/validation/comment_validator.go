package validation

// Comment length limits. Comments are single-line free text so the
// upper bound is generous.
const (
	commentMinLength = 1
	commentMaxLength = 500
)

// CommentValidator provides validation for entry comments
type CommentValidator struct {
	validator *Validator
}

// NewCommentValidator creates a new comment validator
func NewCommentValidator() *CommentValidator {
	return &CommentValidator{
		validator: NewValidator(),
	}
}

// ValidateComment validates an entry comment for creation or update
func (cv *CommentValidator) ValidateComment(comment string) error {
	validationError := NewValidationError()

	trimmed := cv.validator.TrimString(comment)

	if !cv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("comment")
		return validationError
	}

	if !cv.validator.IsValidStringLength(trimmed, commentMinLength, commentMaxLength) {
		validationError.AddInvalidLengthError("comment", trimmed, commentMinLength, commentMaxLength)
	}

	if !cv.validator.IsFreeText(trimmed) {
		validationError.AddInvalidCharacterError("comment", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidComment returns a cleaned comment if valid
func (cv *CommentValidator) GetValidComment(comment string) (string, error) {
	if err := cv.ValidateComment(comment); err != nil {
		return "", err
	}
	return cv.validator.TrimString(comment), nil
}

// ValidateEntryID validates an entry ID
func (cv *CommentValidator) ValidateEntryID(id int64) error {
	if !cv.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
