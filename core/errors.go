package core

import "errors"

var (
	ErrNotFound         = errors.New("minisite: not found")
	ErrTemplateNotFound = errors.New("minisite: template not found")
)

func IsNotFoundError(err error) bool {
	return err != nil && err.Error() == ErrNotFound.Error()
}

func IsTemplateNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}
