package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/time/rate"

	"blog/pkg/category"
	"blog/pkg/location"
	"blog/pkg/logger"
	"blog/pkg/middleware"
	"blog/pkg/post"
	"blog/pkg/render"
	"blog/pkg/sessions"
	"blog/pkg/user"
	"blog/pkg/user/api"
)

type EnvConfig map[string]string

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	var cfg EnvConfig = readDotenv()
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("pgx", "postgresql://localhost/"+cfg["POSTGRES_DB"]+"?sslmode=disable")
	if err != nil {
		log.Printf("Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("unable to reach PostgreSQL: %v", err)
	}

	redisConn, err := redis.DialURL(cfg["REDIS_ADDR"])
	if err != nil {
		log.Fatalf("main: can't connect to Redis")
	}

	mongoCtx, mongoCtxCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer mongoCtxCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg["MONGODB_URI"]))
	if err != nil {
		log.Fatalln("main: can't connect to MongoDB,", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		log.Fatalln("main: unable to connect to MongoDB,", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(mongoCtx); err != nil {
			log.Fatalln("main: failed disconnecting from MongoDB, ", err)
		}
	}()

	blogDB := mongoClient.Database("blog")
	postsCol := blogDB.Collection("posts")
	commentsCol := blogDB.Collection("comments")
	categoriesCol := blogDB.Collection("categories")
	locationsCol := blogDB.Collection("locations")

	mediaDir := cfg["MEDIA_DIR"]
	if mediaDir == "" {
		mediaDir = "media"
	}

	tmpl, err := render.New()
	if err != nil {
		log.Fatalln("main: can't parse templates:", err)
	}

	usersRepo := user.NewUserRepo(db)
	categoriesRepo := category.NewRepo(categoriesCol, postsCol)
	locationsRepo := location.NewRepo(locationsCol, postsCol)
	postsRepo := post.NewPostRepo(postsCol, commentsCol, categoriesRepo, locationsRepo)
	sessionManager := sessions.NewSessionManager(cfg["SECRET_KEY"], redisConn)
	postHandler := post.NewPostHandler(postsRepo, categoriesRepo, locationsRepo, usersRepo, tmpl, mediaDir)
	userHandler := api.NewUserHandler(usersRepo, sessionManager, postsRepo, tmpl)

	r := mux.NewRouter()

	// Generate fake content to have better UI experience
	// seed(usersRepo, categoriesRepo, locationsRepo, postsRepo)

	// Public pages
	r.HandleFunc("/", postHandler.Index).Methods("GET")
	r.HandleFunc("/category/{category_slug}/", postHandler.Category).Methods("GET")
	r.HandleFunc("/profile/{username}/", postHandler.Profile).Methods("GET")

	// Posts. The create route goes first so it doesn't get captured as a
	// post id by the detail route.
	r.HandleFunc("/posts/create/", postHandler.Create).Methods("GET", "POST")
	r.HandleFunc("/posts/{post_id}/", postHandler.Detail).Methods("GET")
	r.HandleFunc("/posts/{post_id}/edit/", postHandler.Edit).Methods("GET", "POST")
	r.HandleFunc("/posts/{post_id}/delete/", postHandler.Delete).Methods("GET", "POST")

	// Comments
	r.HandleFunc("/posts/{post_id}/comment/", postHandler.AddComment).Methods("POST")
	r.HandleFunc("/posts/{post_id}/comment/{comment_id}/edit/", postHandler.EditComment).Methods("GET", "POST")
	r.HandleFunc("/posts/{post_id}/comment/{comment_id}/delete/", postHandler.DeleteComment).Methods("GET", "POST")

	// Auth. Credential posts are rate limited per client IP.
	limiter := middleware.NewIPRateLimiter(rate.Limit(1), 5)
	r.HandleFunc("/auth/registration/", middleware.RateLimit(limiter, userHandler.Register)).Methods("GET", "POST")
	r.HandleFunc("/auth/login/", middleware.RateLimit(limiter, userHandler.LogIn)).Methods("GET", "POST")
	r.HandleFunc("/auth/logout/", userHandler.LogOut).Methods("POST")
	r.HandleFunc("/edit-profile/", userHandler.EditProfile).Methods("GET", "POST")

	// Uploaded post images
	r.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	auth := middleware.NewAuthMiddleware(sessionManager, usersRepo)
	r.Use(auth.Middleware)

	logMiddleware := middleware.NewLoggingMiddleware(logger.Run(cfg["LOG_LEVEL"]))
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.AccessLog)

	log.Println("Serving at http://localhost:8080/")
	log.Fatalln(http.ListenAndServe(":8080", r))
}

func readDotenv() EnvConfig {
	env, err := godotenv.Read()
	if err != nil {
		log.Fatal("failed reading .env file:", err)
	}
	return env
}
