// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package s3

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/defaults"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// newService - builds the S3 client described by cfg. Role assumption goes through STS before the client is
// created, so the client only ever sees static credentials or the default chain.
func newService(ctx context.Context, cfg Config, logLevel string) (*s3.S3, error) {
	ses, err := newSession(cfg.CertFile)
	if err != nil {
		return nil, err
	}

	awsCfg := aws.NewConfig().
		WithS3ForcePathStyle(cfg.forcePathStyle()).
		WithS3UseAccelerate(cfg.UseAccelerate).
		WithLogger(LogWrapper{logger: *log.Ctx(ctx)}).
		WithLogLevel(awsLogLevel(logLevel))
	request.WithRetryer(awsCfg, client.DefaultRetryer{NumMaxRetries: cfg.maxRetries()})
	if cfg.Endpoint != "" {
		awsCfg.WithEndpoint(cfg.Endpoint)
	}
	if cfg.Region != "" {
		awsCfg.WithRegion(cfg.Region)
	}
	if cfg.NoVerifySsl {
		awsCfg.WithHTTPClient(&http.Client{
			Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		})
	}

	creds := cfg.Credentials
	if creds.RoleArn != "" {
		if creds, err = assumeRole(ctx, ses, creds); err != nil {
			return nil, err
		}
	}
	if creds.isStatic() {
		awsCfg.WithCredentials(chainWithStatic(awsCfg, creds))
	}

	return s3.New(ses, awsCfg), nil
}

// newSession - opens an AWS session, trusting the CA bundle in certFile when it is set.
func newSession(certFile string) (*session.Session, error) {
	var opts session.Options
	if certFile != "" {
		f, err := os.Open(certFile)
		if err != nil {
			return nil, fmt.Errorf("open cert file: %w", err)
		}
		defer f.Close()
		opts.CustomCABundle = f
	}
	ses, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("cannot establish session: %w", err)
	}
	return ses, nil
}

// assumeRole - exchanges the session credentials for temporary credentials of creds.RoleArn.
func assumeRole(ctx context.Context, ses *session.Session, creds Credentials) (Credentials, error) {
	out, err := sts.New(ses).AssumeRoleWithContext(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(creds.RoleArn),
		RoleSessionName: aws.String(creds.SessionName),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("unable to assume role %s: %w", creds.RoleArn, err)
	}
	log.Ctx(ctx).Debug().
		Str("RoleArn", creds.RoleArn).
		Time("Expiration", aws.TimeValue(out.Credentials.Expiration)).
		Msg("assumed s3 role")
	return Credentials{
		AccessKeyId:     aws.StringValue(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.StringValue(out.Credentials.SecretAccessKey),
		SessionToken:    aws.StringValue(out.Credentials.SessionToken),
		RoleArn:         creds.RoleArn,
		SessionName:     creds.SessionName,
	}, nil
}

// chainWithStatic - puts the static keys in front of the default providers.
func chainWithStatic(awsCfg *aws.Config, creds Credentials) *credentials.Credentials {
	providers := []credentials.Provider{
		&credentials.StaticProvider{
			Value: credentials.Value{
				AccessKeyID:     creds.AccessKeyId,
				SecretAccessKey: creds.SecretAccessKey,
				SessionToken:    creds.SessionToken,
			},
		},
	}
	providers = append(providers, defaults.CredProviders(awsCfg, defaults.Handlers())...)
	return credentials.NewCredentials(&credentials.ChainProvider{
		VerboseErrors: aws.BoolValue(awsCfg.CredentialsChainVerboseErrors),
		Providers:     providers,
	})
}

// awsLogLevel - the SDK only logs requests when the application runs at debug level.
func awsLogLevel(logLevel string) aws.LogLevelType {
	if logLevel == zerolog.LevelDebugValue {
		return aws.LogDebug | aws.LogDebugWithRequestErrors | aws.LogDebugWithRequestRetries
	}
	return aws.LogOff
}
