package csvlist

import (
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

var cluster, outputFileName string

func init() {
	CSVListCmd.Flags().StringVar(&cluster, "cluster", "", "name of the cluster. required.")
	CSVListCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	CSVListCmd.MarkFlagRequired("cluster")
	CSVListCmd.Flags().SortFlags = false
}

// CSVListCmd lists cluster shared volumes
var CSVListCmd = &cobra.Command{
	Use:   "csv-list",
	Short: "List cluster shared volumes with capacity and free space.",
	Long: `
List the cluster shared volumes of a cluster with capacity and free space in GB (2^30 bytes).

The volumes are read from the first node of the cluster.

The --update-vmm and --no-prompt flags are ignored for this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		csvList()
	},
}

func csvList() {
	utils.LogStartCommand("csv-list")

	s := utils.ConnectServer()
	defer s.Close()

	data, err := report(s, cluster)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}

	utils.WriteRecords(data, "csv-list", outputFileName)
	utils.LogEndCommand("csv-list")
}

func report(s *vmmapi.Server, clusterName string) ([][]string, error) {
	c, a, err := s.GetCluster(clusterName)
	utils.LogAPIResp("GetCluster", a)
	if err != nil {
		return nil, err
	}
	if len(c.Nodes) == 0 {
		utils.LogWarning(c.Name+" has no nodes.", true)
	}

	vols, a, err := s.GetClusterSharedVolumes(c)
	utils.LogAPIResp("GetClusterSharedVolumes", a)
	if err != nil {
		return nil, err
	}

	data := [][]string{{"cluster_name", "volume_name", "path", "capacity_gb", "free_space_gb", "free_pct"}}
	for _, v := range vols {
		data = append(data, []string{c.Name, v.Name, v.Path, utils.BytesToGB(v.Capacity), utils.BytesToGB(v.FreeSpace), utils.Percent(float64(v.FreeSpace), float64(v.Capacity))})
	}
	return data, nil
}
