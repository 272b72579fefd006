package handlers

import "catalog/internal/validation"

const (
	msgName          = "Nombre del producto no puede ir vacio"
	msgPriceNumeric  = "Valor no valido"
	msgPriceRequired = "El Precio del producto no puede ir vacio"
	msgPricePositive = "Precio tiene que ser mayor que 0"
	msgAvailability  = "Tiene que ser boolean"
	msgID            = "ID invalido"
)

// Rule lists per route, evaluated in declaration order.
var (
	idRules = []validation.Rule{
		validation.Param("id", "int", ""),
	}

	idRulesWithMessage = []validation.Rule{
		validation.Param("id", "int", msgID),
	}

	createRules = []validation.Rule{
		validation.Body("name", "notempty", msgName),
		validation.Body("price", "numeric", msgPriceNumeric),
		validation.Body("price", "notempty", msgPriceRequired),
		validation.Body("price", "positive", msgPricePositive),
	}

	replaceRules = []validation.Rule{
		validation.Param("id", "int", msgID),
		validation.Body("name", "notempty", msgName),
		validation.Body("price", "numeric", msgPriceNumeric),
		validation.Body("price", "notempty", msgPriceRequired),
		validation.Body("price", "positive", msgPricePositive),
		validation.Body("availability", "boolean", msgAvailability),
	}
)
