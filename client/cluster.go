package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	osdsl "github.com/ca-srg/osdsl"
)

// ClusterNamespace groups cluster-level operations.
type ClusterNamespace struct {
	client *Client
}

// Cluster returns the cluster namespace.
func (c *Client) Cluster() *ClusterNamespace {
	return &ClusterNamespace{client: c}
}

// HealthOptions are the parameters of a cluster health request.
type HealthOptions struct {
	// WaitForStatus blocks until the cluster reaches the status or the
	// request times out.
	WaitForStatus osdsl.HealthStatus
	Timeout       string
}

// HealthResponse is the cluster health summary.
type HealthResponse struct {
	ClusterName         string             `json:"cluster_name"`
	Status              osdsl.HealthStatus `json:"status"`
	TimedOut            bool               `json:"timed_out"`
	NumberOfNodes       int                `json:"number_of_nodes"`
	NumberOfDataNodes   int                `json:"number_of_data_nodes"`
	ActivePrimaryShards int                `json:"active_primary_shards"`
	ActiveShards        int                `json:"active_shards"`
	RelocatingShards    int                `json:"relocating_shards"`
	InitializingShards  int                `json:"initializing_shards"`
	UnassignedShards    int                `json:"unassigned_shards"`
	PendingTasks        int                `json:"number_of_pending_tasks"`
	ActiveShardsPercent float64            `json:"active_shards_percent_as_number"`
}

// Health fetches the cluster health summary.
func (n *ClusterNamespace) Health(ctx context.Context, opts *HealthOptions) (*HealthResponse, error) {
	v := url.Values{}
	if opts != nil {
		if opts.WaitForStatus != "" {
			v.Set("wait_for_status", string(opts.WaitForStatus))
		}
		if opts.Timeout != "" {
			v.Set("timeout", opts.Timeout)
		}
	}

	data, err := n.client.do(ctx, http.MethodGet, "/_cluster/health", v, nil, "", "cluster_health")
	if err != nil {
		return nil, err
	}
	var resp HealthResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, osdsl.NewDecodeError("", "cluster health response", data, err)
	}
	return &resp, nil
}

// HealthCheck verifies the cluster is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.Cluster().Health(ctx, nil)
	return err
}
