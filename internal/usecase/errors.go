package usecase

import "errors"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

const (
	// CodePartialConversion marca o estado de conversão pela metade: o lead
	// já virou "closed" mas o evento não foi criado. Não há transação entre
	// as duas tabelas, então esse estado é alcançável e precisa ser visível
	// para o usuário, nunca re-tentado em silêncio.
	CodePartialConversion = "PARTIAL_CONVERSION"

	CodeValidation   = "VALIDATION_ERROR"
	CodeLeadNotFound = "LEAD_NOT_FOUND"
)

func IsPartialConversion(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == CodePartialConversion
}
