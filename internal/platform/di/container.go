// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	httpin "texia/internal/adapters/in/http"
	"texia/internal/adapters/in/http/handlers"
	fsout "texia/internal/adapters/out/firestore"
	gcsout "texia/internal/adapters/out/gcs"
	httpout "texia/internal/adapters/out/http"
	"texia/internal/adapters/out/mail"
	"texia/internal/application/query"
	"texia/internal/application/usecase"
	"texia/internal/infra/config"
	"texia/internal/infra/secrets"
)

// Container wires infrastructure clients to the application layer.
//
// Firestore is mandatory: without it nothing in this service works.
// Firebase Auth, Secret Manager and GCS are best-effort; when one of
// them is unavailable the affected feature degrades (no auth middleware,
// no secret fallback, unsigned image URLs) and boot continues.
type Container struct {
	Config *config.Config

	Firestore    *firestore.Client
	GCS          *storage.Client
	FirebaseAuth *fbauth.Client
}

func NewContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()

	opts := clientOpts(cfg)

	fsClient, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("di: firestore client: %w", err)
	}

	c := &Container{Config: cfg, Firestore: fsClient}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		log.Printf("[di] WARN: firebase app init failed (auth disabled): %v", err)
	} else if c.FirebaseAuth, err = app.Auth(ctx); err != nil {
		log.Printf("[di] WARN: firebase auth init failed (auth disabled): %v", err)
		c.FirebaseAuth = nil
	}

	if c.GCS, err = storage.NewClient(ctx, opts...); err != nil {
		log.Printf("[di] WARN: gcs client init failed (image checks disabled): %v", err)
		c.GCS = nil
	}

	c.resolveSecrets(ctx)
	return c, nil
}

func clientOpts(cfg *config.Config) []option.ClientOption {
	if cfg.FirestoreCredentialsFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirestoreCredentialsFile)}
	}
	if cfg.GCPCreds != "" {
		return []option.ClientOption{option.WithCredentialsFile(cfg.GCPCreds)}
	}
	return nil
}

// resolveSecrets fills keys left empty by the environment from Secret
// Manager. Failures only log: the env may simply not grant SM access.
func (c *Container) resolveSecrets(ctx context.Context) {
	cfg := c.Config
	if cfg.FirebaseWebAPIKey == "" && cfg.FirebaseWebAPIKeySecret != "" {
		v, err := secrets.LoadString(ctx, cfg.FirebaseProjectID, cfg.FirebaseWebAPIKeySecret)
		if err != nil {
			log.Printf("[di] WARN: firebase web api key secret: %v", err)
		} else {
			cfg.FirebaseWebAPIKey = v
		}
	}
	if cfg.SendGridAPIKey == "" && cfg.SendGridAPIKeySecret != "" {
		v, err := secrets.LoadString(ctx, cfg.FirebaseProjectID, cfg.SendGridAPIKeySecret)
		if err != nil {
			log.Printf("[di] WARN: sendgrid api key secret: %v", err)
		} else {
			cfg.SendGridAPIKey = v
		}
	}
}

// RouterDeps builds every repository, query and usecase the router needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	cfg := c.Config

	fabrics := fsout.NewFabricRepositoryFS(c.Firestore)
	lots := fsout.NewLotRepositoryFS(c.Firestore)
	tasks := fsout.NewTaskRepositoryFS(c.Firestore)
	defects := fsout.NewDefectRepositoryFS(c.Firestore)
	profiles := fsout.NewProfileRepositoryFS(c.Firestore)

	images := gcsout.NewFabricImageURLResolver(cfg.FabricImageBucket)

	var signedImages handlers.FabricImageIssuer
	if c.GCS != nil {
		signedImages = gcsout.NewFabricImageRepositoryGCS(c.GCS, cfg.FabricImageBucket)
	}

	var alert usecase.DefectAlertSender
	if cfg.SendGridAPIKey != "" && cfg.SendGridFrom != "" && cfg.DefectAlertTo != "" {
		alert = mail.NewDefectAlertMailer(
			mail.NewSendGridClient(cfg.SendGridAPIKey),
			cfg.SendGridFrom,
			cfg.DefectAlertTo,
		)
	} else {
		log.Printf("[di] WARN: sendgrid not configured; critical defect alerts disabled")
	}

	var signer usecase.CredentialSignIn
	if cfg.FirebaseWebAPIKey != "" {
		signer = httpout.NewIdentityClient(cfg.IdentityBaseURL, cfg.FirebaseWebAPIKey)
	} else {
		log.Printf("[di] WARN: firebase web api key missing; password sign-in disabled")
	}

	return httpin.RouterDeps{
		AuthUC:    usecase.NewAuthUsecase(c.FirebaseAuth, signer),
		DefectUC:  usecase.NewDefectUsecase(defects, alert),
		ProfileUC: usecase.NewProfileUsecase(profiles),

		CatalogQ:   query.NewCatalogQuery(fabrics, images),
		InventoryQ: query.NewInventoryQuery(lots),
		DashboardQ: query.NewDashboardQuery(tasks),
		OrdersQ:    query.NewOrdersQuery(tasks),
		ProgressQ:  query.NewProgressQuery(tasks),

		FabricImages: signedImages,
		FirebaseAuth: c.FirebaseAuth,
	}
}

func (c *Container) Close() {
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
}
