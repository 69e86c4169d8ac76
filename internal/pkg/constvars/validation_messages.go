package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"base64":   "must be a valid base64 string",
	"datetime": "must match the format %s",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"eqfield":  true,
	"len":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"datetime": true,
}
