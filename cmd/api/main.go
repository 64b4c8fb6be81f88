package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matheusvll/casaflor-api/internal/config"
	"github.com/matheusvll/casaflor-api/internal/entity"
	"github.com/matheusvll/casaflor-api/internal/infra/database"
	"github.com/matheusvll/casaflor-api/internal/infra/http/handlers"
	"github.com/matheusvll/casaflor-api/internal/infra/http/middleware"
	"github.com/matheusvll/casaflor-api/internal/infra/mail"
	"github.com/matheusvll/casaflor-api/internal/infra/queue"
	"github.com/matheusvll/casaflor-api/internal/rotator"
	"github.com/matheusvll/casaflor-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Store genérico (o único handle de banco do processo)
	store := database.NewStore(db)
	if cfg.Migrate {
		if err := database.Migrate(context.Background(), store); err != nil {
			log.Fatal(err)
		}
	}

	// 2. Fila (opcional: sem RABBITMQ_HOST o aviso de conversão fica só no log)
	var producer usecase.QueueProducerInterface
	var rabbitConn *queue.RabbitMQ
	if cfg.RabbitHost != "" {
		rabbitConn, err = queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitConn.Conn.Close()
		defer rabbitConn.Ch.Close()
		producer = queue.NewProducer(rabbitConn.Conn, rabbitConn.Ch)

		// Worker: consome conversões e avisa a equipe por email
		mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailNotifyTo)
		worker := queue.NewWorker(rabbitConn.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RabbitMQ desligado (RABBITMQ_HOST vazio), conversões não geram notificação")
	}

	// 3. Repositórios
	leadRepo := database.NewLeadRepository(store)
	eventRepo := database.NewEventRepository(store)

	// 4. Rotator de depoimentos: nasce no fallback, troca pela sequência
	// viva quando o fetch inicial responde
	rot := rotator.New(store.FetchTestimonials)
	go rot.Load(context.Background())
	rot.Start(rotator.DefaultInterval)
	defer rot.Stop()

	// 5. UseCases
	convertUC := usecase.NewConvertLeadUseCase(leadRepo, eventRepo, producer)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, convertUC)
	rotationHandler := handlers.NewRotationHandler(rot)
	healthHandler := newHealthHandler(store, rabbitConn)

	eventsHandler := handlers.NewResourceHandler[entity.Event](store, "events", "start_date", true)
	financialHandler := handlers.NewResourceHandler[entity.FinancialRecord](store, "financial_records", "date", false)
	testimonialsHandler := handlers.NewResourceHandler[entity.Testimonial](store, "testimonials", "created_at", false)
	galleryHandler := handlers.NewResourceHandler[entity.GalleryImage](store, "gallery_images", "order_index", true)
	sectionsHandler := handlers.NewResourceHandler[entity.SiteSectionItem](store, "site_sections", "order_index", true)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin, "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/leads", leadHandler.Routes())
		r.Mount("/events", eventsHandler.Routes())
		r.Mount("/financial-records", financialHandler.Routes())
		r.Mount("/testimonials", testimonialsHandler.Routes())
		r.Mount("/gallery", galleryHandler.Routes())
		r.Mount("/sections", sectionsHandler.Routes())
		r.Mount("/testimonials-rotation", rotationHandler.Routes())
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + cfg.Port
	log.Printf("🌸 Casa Flor API rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func newHealthHandler(store *database.Store, rabbit *queue.RabbitMQ) *handlers.HealthHandler {
	if rabbit != nil {
		return handlers.NewHealthHandler(store.DB, rabbit.Conn)
	}
	return handlers.NewHealthHandler(store.DB, nil)
}
