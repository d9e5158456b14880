package commands

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("table-booking/internal/usecase/commands")
