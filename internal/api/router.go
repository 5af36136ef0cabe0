package api

import (
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"jarcafe/internal/logger"
	"net/http"
)

// NewRouter wires the public routes behind CORS, panic recovery and access
// logging.
func NewRouter(reservations *ReservationHandler, contact *ContactHandler, allowedOrigins []string, log *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", Liveness).Methods("GET")
	r.HandleFunc("/api/reservations", reservations.CreateReservation).Methods("POST")
	r.HandleFunc("/send-email", contact.SendEmail).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true), handlers.RecoveryLogger(recoveryLogger{log}))

	return handlers.CombinedLoggingHandler(logger.Writer{Log: log}, recovery(cors(r)))
}

type recoveryLogger struct {
	log *zap.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered", zap.Any("panic", v))
}
