// Package router monta a tabela de rotas HTTP da API.
package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/auth"
	"github.com/salestrack/sales-api/internal/building"
	"github.com/salestrack/sales-api/internal/client"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/internet"
	"github.com/salestrack/sales-api/internal/logging"
	"github.com/salestrack/sales-api/internal/meeting"
	"github.com/salestrack/sales-api/internal/office"
	"github.com/salestrack/sales-api/internal/sales"
	"github.com/salestrack/sales-api/internal/user"
	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

// New devolve o handler completo: CORS, log de acesso e rotas.
func New(db *gorm.DB, cfg *config.Config, tokens *auth.Tokens, log zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteError(w, req, apperr.NotFound("route"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{
			"success": false,
			"message": "Method not allowed",
		})
	})

	adminOnly := func(h http.HandlerFunc) http.Handler {
		return tokens.Middleware(auth.RequireAdmin(h))
	}

	// Handlers
	userHandler := user.NewHandler(db, tokens)
	clientHandler := client.NewHandler(db)
	meetingHandler := meeting.NewHandler(db)
	internetHandler := internet.NewHandler(db)
	buildingHandler := building.NewHandler(db)
	officeHandler := office.NewHandler(db)
	salesHandler := sales.NewHandler(db)
	updateHandler := &sales.UpdateHandler{Updaters: map[string]sales.Updater{
		"client":   clientHandler,
		"meeting":  meetingHandler,
		"internet": internetHandler,
		"building": buildingHandler,
		"office":   officeHandler,
	}}

	// Login e usuários
	r.HandleFunc("/", userHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)
	r.Handle("/users", adminOnly(userHandler.Create)).Methods(http.MethodPost)
	r.Handle("/users", adminOnly(userHandler.List)).Methods(http.MethodGet)

	// Criação em lote
	r.HandleFunc("/salesdetails", salesHandler.CreateSalesRecord).Methods(http.MethodPost)
	r.HandleFunc("/location", salesHandler.CreateLocation).Methods(http.MethodPost)

	// Clientes
	r.HandleFunc("/clients", clientHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/client/{id:[0-9]+}", clientHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/client/{id:[0-9]+}", clientHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/client/{id:[0-9]+}", salesHandler.DeleteClient).Methods(http.MethodDelete)
	r.HandleFunc("/client/{id:[0-9]+}/meetings", meetingHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/client/{id:[0-9]+}/internet", internetHandler.Create).Methods(http.MethodPost)

	// Reuniões
	r.HandleFunc("/meetings", meetingHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/meeting/{id:[0-9]+}", meetingHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/meeting/{id:[0-9]+}", meetingHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/meeting/{id:[0-9]+}", meetingHandler.Delete).Methods(http.MethodDelete)

	// Internet
	r.HandleFunc("/internet", internetHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/internet/{id:[0-9]+}", internetHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/internet/{id:[0-9]+}", internetHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/internet/{id:[0-9]+}", internetHandler.Delete).Methods(http.MethodDelete)

	// Prédios e escritórios; /office e /locations/office são a mesma operação
	r.HandleFunc("/locations/buildings", buildingHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/locations/building/{id:[0-9]+}", buildingHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/locations/building/{id:[0-9]+}", buildingHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/locations/building/{id:[0-9]+}", salesHandler.DeleteBuilding).Methods(http.MethodDelete)
	r.HandleFunc("/locations/building/{id:[0-9]+}/offices", officeHandler.Create).Methods(http.MethodPost)
	for _, prefix := range []string{"", "/locations"} {
		r.HandleFunc(prefix+"/offices", officeHandler.List).Methods(http.MethodGet)
		r.HandleFunc(prefix+"/office/{id:[0-9]+}", officeHandler.Get).Methods(http.MethodGet)
		r.HandleFunc(prefix+"/office/{id:[0-9]+}", officeHandler.Update).Methods(http.MethodPut)
		r.HandleFunc(prefix+"/office/{id:[0-9]+}", officeHandler.Delete).Methods(http.MethodDelete)
	}

	// Atualização genérica
	r.HandleFunc("/update", updateHandler.Update).Methods(http.MethodPut)

	// Relatórios
	r.HandleFunc("/sales", salesHandler.GetAllSales).Methods(http.MethodGet)
	r.HandleFunc("/sales/{id:[0-9]+}", salesHandler.GetClientComplete).Methods(http.MethodGet)
	r.HandleFunc("/summary", salesHandler.Summary).Methods(http.MethodGet)

	if cfg.EnableDevRoutes {
		r.Handle("/clear-all-data", adminOnly(salesHandler.ClearAllData)).Methods(http.MethodDelete)
		log.Warn().Msg("dev routes enabled: DELETE /clear-all-data is available to admins")
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", logging.RequestIDHeader},
		ExposedHeaders:   []string{logging.RequestIDHeader},
		AllowCredentials: true,
	})
	return logging.Middleware(log)(c.Handler(r))
}
