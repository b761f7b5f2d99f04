package models

import "github.com/task-management-api/apperror"

func validationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return apperror.Validation(messages...)
}
