package config

import (
	"fmt"

	"github.com/slighter12/go-lib/database/postgres"
)

// replicasFromEnv reads read-replica connections from
// POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}, starting at 0 and
// stopping at the first index without both a host and a port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", i, name))
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
