package clusternodes

import (
	"fmt"
	"strconv"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var cluster, outputFileName string

func init() {
	ClusterNodesCmd.Flags().StringVar(&cluster, "cluster", "", "name of the cluster. required.")
	ClusterNodesCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	ClusterNodesCmd.MarkFlagRequired("cluster")
	ClusterNodesCmd.Flags().SortFlags = false
}

// ClusterNodesCmd reports failover cluster node state
var ClusterNodesCmd = &cobra.Command{
	Use:   "cluster-nodes",
	Short: "Report failover cluster node state and quorum weights.",
	Long: `
Report the state and quorum vote weights of every node in a failover cluster as the cluster itself reports them.

The cluster is found in VMM and the query runs on its first node.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		clusterNodes()
	},
}

func clusterNodes() {
	utils.LogStartCommand("cluster-nodes")

	s := utils.ConnectServer()
	defer s.Close()

	data, err := report(s, cluster, utils.HostSessions(s))
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(data, "cluster-nodes", outputFileName)
	utils.LogEndCommand("cluster-nodes")
}

func report(s *vmmapi.Server, clusterName string, open func(vmmapi.VMHost) (*hostapi.Host, error)) ([][]string, error) {
	c, a, err := s.GetCluster(clusterName)
	utils.LogAPIResp("GetCluster", a)
	if err != nil {
		return nil, err
	}
	if len(c.Nodes) == 0 {
		return nil, fmt.Errorf("%s has no nodes in vmm", c.Name)
	}

	vh, a, err := s.GetVMHost(c.Nodes[0])
	utils.LogAPIResp("GetVMHost", a)
	if err != nil {
		return nil, err
	}

	h, err := open(vh)
	if err != nil {
		return nil, fmt.Errorf("%s - could not open session - %s", vh.Name, err)
	}
	defer h.Close()

	nodes, a, err := h.GetClusterNodes()
	utils.LogAPIResp("GetClusterNodes", a)
	if err != nil {
		return nil, err
	}

	data := [][]string{{"cluster_name", "node_name", "state", "node_weight", "dynamic_weight"}}
	for _, n := range nodes {
		data = append(data, []string{c.Name, n.Name, n.State, strconv.Itoa(n.NodeWeight), strconv.Itoa(n.DynamicWeight)})
	}
	return data, nil
}
