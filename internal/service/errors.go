package service

import "errors"

var (
	// ErrValidation — документ не прошёл проверку обязательных полей; хранилище не вызывалось.
	ErrValidation = errors.New("validation failed")
	// ErrMalformedImport — файл импорта не является JSON-массивом объектов; ничего не записано.
	ErrMalformedImport = errors.New("malformed import")
)
