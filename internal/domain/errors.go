package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDatasetUnavailable = errors.New("dataset no disponible")
	ErrMalformedDataset   = errors.New("dataset con formato inválido")
)
