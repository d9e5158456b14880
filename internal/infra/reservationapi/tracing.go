package reservationapi

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("table-booking/internal/infra/reservationapi")
