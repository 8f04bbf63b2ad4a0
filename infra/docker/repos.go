package docker

import (
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/artifactregistry"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// RepositoryID is the artifact registry repo the api image is pushed to.
const RepositoryID = "expense-tracker"

func CreateCloudrunRepo(ctx *pulumi.Context, prov *gcp.Provider) (*artifactregistry.Repository, error) {
	gcpCfg := config.New(ctx, "gcp")

	svc, err := projects.NewService(ctx, "artifactRegistry", &projects.ServiceArgs{
		Service: pulumi.String("artifactregistry.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	return artifactregistry.NewRepository(ctx, "apiRepository", &artifactregistry.RepositoryArgs{
		Format:       pulumi.String("DOCKER"),
		RepositoryId: pulumi.String(RepositoryID),
		Location:     pulumi.String(gcpCfg.Require("region")),
		Description:  pulumi.String("Expense tracker api and job images"),
	},
		pulumi.Provider(prov),
		pulumi.DependsOn([]pulumi.Resource{svc}),
	)
}
