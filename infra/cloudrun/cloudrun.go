package cloudrun

import (
	"fmt"
	"strconv"

	"github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudrun"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/expense-tracker/infra/common"
	infradocker "github.com/GregMSThompson/expense-tracker/infra/docker"
)

const containerPort = 8080

// SetupCloudRun builds the api image and deploys it as a public service.
// Callers authenticate with Firebase ID tokens checked by the api itself.
func SetupCloudRun(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (*cloudrun.Service, error) {
	img, err := buildApiImage(ctx, res...)
	if err != nil {
		return nil, err
	}

	srv, err := enableCloudRun(ctx, prov)
	if err != nil {
		return nil, err
	}

	apiSA, err := createServiceAccount(ctx, prov)
	if err != nil {
		return nil, err
	}

	svc, err := createCloudRunService(ctx, img, apiSA, prov, srv)
	if err != nil {
		return nil, err
	}

	if err := allowPublicInvoke(ctx, svc, prov); err != nil {
		return nil, err
	}

	return svc, nil
}

func buildApiImage(ctx *pulumi.Context, res ...pulumi.Resource) (*docker.Image, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	hash, err := common.GenerateHash("../")
	if err != nil {
		return nil, err
	}

	return docker.NewImage(ctx, "apiImage", &docker.ImageArgs{
		Build: docker.DockerBuildArgs{
			Platform:   pulumi.String("linux/amd64"),
			Context:    pulumi.String(".."),
			Dockerfile: pulumi.String("../cmd/api/Dockerfile"),
		},
		ImageName: pulumi.String(fmt.Sprintf("%s-docker.pkg.dev/%s/%s/expense-api:%s",
			region, projectID, infradocker.RepositoryID, hash)),
	},
		pulumi.DependsOn(res),
	)
}

func enableCloudRun(ctx *pulumi.Context, prov *gcp.Provider) (*projects.Service, error) {
	return projects.NewService(ctx, "cloudRunService", &projects.ServiceArgs{
		Service: pulumi.String("run.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
}

// createServiceAccount grants Firestore read/write only. Token
// verification needs no extra role.
func createServiceAccount(ctx *pulumi.Context, prov *gcp.Provider) (*serviceaccount.Account, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")

	apiSA, err := serviceaccount.NewAccount(ctx, "apiServiceAccount", &serviceaccount.AccountArgs{
		AccountId:   pulumi.String("expense-api"),
		DisplayName: pulumi.String("Expense Tracker API"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	_, err = projects.NewIAMMember(ctx, "firestoreAccess", &projects.IAMMemberArgs{
		Role: pulumi.String("roles/datastore.user"),
		Member: apiSA.Email.ApplyT(func(email string) string {
			return fmt.Sprintf("serviceAccount:%s", email)
		}).(pulumi.StringOutput),
		Project: pulumi.String(projectID),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	return apiSA, nil
}

func env(name, value string) *cloudrun.ServiceTemplateSpecContainerEnvArgs {
	return &cloudrun.ServiceTemplateSpecContainerEnvArgs{
		Name:  pulumi.String(name),
		Value: pulumi.String(value),
	}
}

func createCloudRunService(ctx *pulumi.Context,
	img *docker.Image,
	apiSA *serviceaccount.Account,
	prov *gcp.Provider,
	res ...pulumi.Resource) (*cloudrun.Service, error) {
	gcpCfg := config.New(ctx, "gcp")
	crCfg := config.New(ctx, "cloudrun")
	appCfg := config.New(ctx, "app")

	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")
	timeout, err := strconv.Atoi(crCfg.Require("timeout"))
	if err != nil {
		return nil, fmt.Errorf("cloudrun:timeout: %w", err)
	}

	envs := cloudrun.ServiceTemplateSpecContainerEnvArray{
		env("PROJECTID", projectID),
		env("REGION", region),
		env("LOGLEVEL", crCfg.Require("logLevel")),
		env("TIMEZONE", appCfg.Get("timezone")),
	}
	if v := appCfg.Get("recentLimit"); v != "" {
		envs = append(envs, env("RECENTLIMIT", v))
	}
	if v := appCfg.Get("unpaidLimit"); v != "" {
		envs = append(envs, env("UNPAIDLIMIT", v))
	}

	return cloudrun.NewService(ctx, "apiService", &cloudrun.ServiceArgs{
		Location: pulumi.String(region),

		Template: &cloudrun.ServiceTemplateArgs{
			Metadata: &cloudrun.ServiceTemplateMetadataArgs{
				Annotations: pulumi.StringMap{
					"autoscaling.knative.dev/minScale":         pulumi.String(crCfg.Require("minScale")),
					"autoscaling.knative.dev/maxScale":         pulumi.String(crCfg.Require("maxScale")),
					"run.googleapis.com/cpu":                   pulumi.String(crCfg.Require("cpu")),
					"run.googleapis.com/memory":                pulumi.String(crCfg.Require("memory")),
					"run.googleapis.com/cpu-throttling":        pulumi.String("true"),
					"run.googleapis.com/container-concurrency": pulumi.String(crCfg.Require("concurrency")),
				},
			},

			Spec: &cloudrun.ServiceTemplateSpecArgs{
				ServiceAccountName: apiSA.Email,
				TimeoutSeconds:     pulumi.Int(timeout),

				Containers: cloudrun.ServiceTemplateSpecContainerArray{
					&cloudrun.ServiceTemplateSpecContainerArgs{
						Image: img.ImageName,
						Ports: cloudrun.ServiceTemplateSpecContainerPortArray{
							&cloudrun.ServiceTemplateSpecContainerPortArgs{
								ContainerPort: pulumi.Int(containerPort),
							},
						},
						Envs: envs,
					},
				},
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

func allowPublicInvoke(ctx *pulumi.Context, svc *cloudrun.Service, prov *gcp.Provider) error {
	gcpCfg := config.New(ctx, "gcp")

	_, err := cloudrun.NewIamMember(ctx, "publicInvoker", &cloudrun.IamMemberArgs{
		Service:  svc.Name,
		Location: pulumi.String(gcpCfg.Require("region")),
		Role:     pulumi.String("roles/run.invoker"),
		Member:   pulumi.String("allUsers"),
	},
		pulumi.Provider(prov),
	)
	return err
}
