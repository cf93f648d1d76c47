package clusterinfo

import (
	"strconv"

	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var cluster, outputFileName string

func init() {
	ClusterInfoCmd.Flags().StringVar(&cluster, "cluster", "", "name of the cluster. all clusters are reported if not set.")
	ClusterInfoCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	ClusterInfoCmd.Flags().SortFlags = false
}

// ClusterInfoCmd reports host clusters
var ClusterInfoCmd = &cobra.Command{
	Use:   "cluster-info",
	Short: "Report host clusters, their nodes, and reserve settings.",
	Long: `
Report host clusters managed by VMM with their nodes, cluster reserve, and number of cluster shared volumes.

Nodes are separated by semicolons.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		clusterInfo()
	},
}

func clusterInfo() {
	utils.LogStartCommand("cluster-info")

	s := utils.ConnectServer()
	defer s.Close()

	clusters, err := getClusters(s, cluster)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(clusterRows(clusters), "cluster-info", outputFileName)
	utils.LogEndCommand("cluster-info")
}

func getClusters(s *vmmapi.Server, name string) ([]vmmapi.Cluster, error) {
	if name == "" {
		clusters, a, err := s.GetClusters()
		utils.LogAPIResp("GetClusters", a)
		return clusters, err
	}
	c, a, err := s.GetCluster(name)
	utils.LogAPIResp("GetCluster", a)
	if err != nil {
		return nil, err
	}
	return []vmmapi.Cluster{c}, nil
}

func clusterRows(clusters []vmmapi.Cluster) [][]string {
	data := [][]string{{"cluster_name", "node_count", "nodes", "cluster_reserve", "cluster_reserve_state", "shared_volume_count"}}
	for _, c := range clusters {
		data = append(data, []string{
			c.Name,
			strconv.Itoa(len(c.Nodes)),
			utils.JoinList(c.Nodes),
			strconv.Itoa(c.ClusterReserve),
			c.ClusterReserveState,
			strconv.Itoa(c.SharedVolumeCount),
		})
	}
	return data
}
