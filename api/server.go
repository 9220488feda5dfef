package api

import (
	"context"
	"fmt"
	"os"

	"github.com/Shashwata32/EcoLeague/api/controllers"
	"github.com/Shashwata32/EcoLeague/api/realtime"
	"github.com/Shashwata32/EcoLeague/api/transport"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/media"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// seedAreaNames are created on first run when the area table is empty, so a
// fresh deployment has something to rank.
var seedAreaNames = []string{"Green Valley", "Sunrise Apts"}

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	areaStorage := &storage.DynamoAreaStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameAreas,
	}
	submissionStorage := &storage.DynamoSubmissionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameSubmissions,
	}
	historyStorage := &storage.DynamoHistoryStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameHistory,
	}
	transactor := &storage.DynamoCompetitionTransactor{
		Client:              dynamoClient,
		AreaTableName:       s.config.TableNameAreas,
		SubmissionTableName: s.config.TableNameSubmissions,
		HistoryTableName:    s.config.TableNameHistory,
	}

	compressor := &media.Compressor{
		MaxBytes:     s.config.MaxImageBytes,
		MaxDimension: s.config.MaxImageDimension,
	}

	hub := realtime.NewHub()
	go hub.Run()
	r.GET("/ws", hub.ServeWS)

	adminAuth := transport.AdminAuthMiddleware(s.config.AdminConfig.Token)

	//Register controllers
	areasController := controllers.NewAreasController(areaStorage, hub)
	areasController.RegisterRoutes(r, adminAuth)
	submissionsController := controllers.NewSubmissionsController(submissionStorage, areaStorage, compressor, hub)
	submissionsController.RegisterRoutes(r, adminAuth)
	moderationController := controllers.NewModerationController(submissionStorage, transactor, hub)
	moderationController.RegisterRoutes(r, adminAuth)
	seasonController := controllers.NewSeasonController(areaStorage, submissionStorage, historyStorage, transactor, hub)
	seasonController.RegisterRoutes(r, adminAuth)
	leaderboardController := controllers.NewLeaderboardController(areaStorage, submissionStorage)
	leaderboardController.RegisterRoutes(r)
	authController := controllers.NewAuthController(s.config.AdminConfig.Username, s.config.AdminConfig.Password, s.config.AdminConfig.Token)
	authController.RegisterRoutes(r)

	seedAreas(areaStorage)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func seedAreas(areaStorage storage.AreaStorage) {
	ctx := context.Background()

	areas, err := areaStorage.GetAll(ctx)
	if err != nil {
		logging.Log.Errorf("failed to check areas for seeding: %v", err)
		return
	}
	if len(areas) > 0 {
		return
	}

	for _, name := range seedAreaNames {
		id, err := gonanoid.New()
		if err != nil {
			logging.Log.Errorf("failed to generate seed area id: %v", err)
			return
		}
		area := &storage.Area{
			ID:    id,
			Name:  name,
			Score: 0,
			Badge: storage.DefaultBadge,
		}
		if err := areaStorage.Create(ctx, area); err != nil {
			logging.Log.Errorf("failed to seed area %q: %v", name, err)
			return
		}
		logging.Log.Infof("seeded area %q", name)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
