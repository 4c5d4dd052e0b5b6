package ports

import "github.com/bft-labs/philo/pkg/log"

// Logger is the diagnostic logger used inside the application core.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
