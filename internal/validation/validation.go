// Package validation valida los formularios de creación y traduce los errores de
// validator a mensajes por campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"admin-dashboard/internal/models"
)

// Errors mapea la ruta del campo (products[0].quantity) a su mensaje
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type ProductForm struct {
	Name        string  `json:"name" validate:"required,min=3"`
	SKU         string  `json:"sku" validate:"required,min=3"`
	Category    string  `json:"category" validate:"required,category"`
	Price       float64 `json:"price" validate:"gte=0.01"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	// Active es true cuando se omite
	Active *bool `json:"active"`
}

func (f ProductForm) IsActive() bool {
	return f.Active == nil || *f.Active
}

type OrderLineForm struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type OrderForm struct {
	Products             []OrderLineForm       `json:"products" validate:"required,min=1,dive"`
	ClientName           string                `json:"clientName" validate:"required"`
	DeliveryAddress      string                `json:"deliveryAddress" validate:"required"`
	PaymentStatus        models.PaymentStatus  `json:"paymentStatus" validate:"oneof=paid pending refunded"`
	DeliveryStatus       models.DeliveryStatus `json:"deliveryStatus" validate:"oneof=pending shipped delivered canceled"`
	ExpectedDeliveryDate string                `json:"expectedDeliveryDate" validate:"required"`
}

// messages indexa por nombre JSON del campo y tag de validación
var messages = map[string]map[string]string{
	"name": {
		"required": "Product name is required",
		"min":      "Product name must be at least 3 characters",
	},
	"sku": {
		"required": "SKU is required",
		"min":      "SKU must be at least 3 characters",
	},
	"category": {
		"required": "Category is required",
		"category": "Unknown category",
	},
	"price":     {"gte": "Price must be greater than 0"},
	"stock":     {"gte": "Stock must be 0 or greater"},
	"productId": {"required": "Product is required"},
	"quantity":  {"gte": "Quantity must be at least 1"},
	"products": {
		"required": "At least one product is required",
		"min":      "At least one product is required",
	},
	"clientName":           {"required": "Client name is required"},
	"deliveryAddress":      {"required": "Delivery address is required"},
	"paymentStatus":        {"oneof": "Invalid payment status"},
	"deliveryStatus":       {"oneof": "Invalid delivery status"},
	"expectedDeliveryDate": {"required": "Expected delivery date is required"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IsKnownCategory(fl.Field().String())
	})
	return v
}

// Struct valida el formulario; devuelve Errors si algún campo falla
func Struct(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if _, exists := out[path]; exists {
			continue
		}
		out[path] = message(fe)
	}
	return out
}

// fieldPath quita el nombre del struct raíz: OrderForm.products[0].quantity → products[0].quantity
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	if byTag, ok := messages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
