package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/ludoreno/madiao/server"
	"github.com/ludoreno/madiao/store"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("bad config: %s", err)
	}

	s := server.NewServer(store.NewInMemoryGameStore())
	s.Addr = cfg.Addr
	s.ReadHeaderTimeout = cfg.ReadHeaderTimeout
	s.IdleTimeout = cfg.IdleTimeout

	s.Handler = handlers.CombinedLoggingHandler(os.Stdout,
		handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		)(s.Handler))

	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(s.ListenAndServe())
}
