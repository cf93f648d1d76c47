package csvprovision

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brian1917/vmmtool/hostapi"
	"github.com/brian1917/vmmtool/utils"
	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// request is one provisioning run.
type request struct {
	cluster    string
	host       string
	serial     string
	name       string
	fileSystem string
}

var req request
var outputFileName string

func init() {
	CSVProvisionCmd.Flags().StringVar(&req.cluster, "cluster", "", "name of the cluster that gets the new volume. required.")
	CSVProvisionCmd.Flags().StringVar(&req.host, "host", "", "cluster node that initializes and formats the disk. required.")
	CSVProvisionCmd.Flags().StringVar(&req.serial, "serial", "", "serial number of the disk as host-disks reports it. required.")
	CSVProvisionCmd.Flags().StringVar(&req.name, "name", "", "name of the cluster shared volume. used for the volume label, the cluster resource, and the C:\\ClusterStorage folder. required.")
	CSVProvisionCmd.Flags().StringVar(&req.fileSystem, "file-system", "NTFS", "file system of the volume. must be NTFS or ReFS.")
	CSVProvisionCmd.Flags().StringVar(&outputFileName, "output-file", "", "optionally specify the name of the output file location. default is current location with a timestamped filename.")
	for _, f := range []string{"cluster", "host", "serial", "name"} {
		CSVProvisionCmd.MarkFlagRequired(f)
	}
	CSVProvisionCmd.Flags().SortFlags = false
}

// CSVProvisionCmd turns a presented LUN into a cluster shared volume
var CSVProvisionCmd = &cobra.Command{
	Use:   "csv-provision",
	Short: "Initialize a new disk and add it to a cluster as a cluster shared volume.",
	Long: `
Initialize a new disk and add it to a cluster as a cluster shared volume.

The disk is found on --host by its serial number (see host-disks). The command then:
  1. brings the disk online, initializes it as GPT, creates one partition, and formats it with the volume name as label.
  2. adds the disk to the cluster, names the cluster resource, adds it as a cluster shared volume, and renames its C:\ClusterStorage folder.
  3. refreshes the cluster in VMM.

There is no rollback. A failure in step 2 leaves a formatted disk that is not clustered.

Use the --update-vmm command to make the change with a user prompt confirmation.

Use --update-vmm and --no-prompt to make the change with no prompts.`,
	Run: func(cmd *cobra.Command, args []string) {
		fs, err := normalizeFileSystem(req.fileSystem)
		if err != nil {
			utils.LogError(err.Error())
		}
		req.fileSystem = fs
		csvProvision()
	},
}

func normalizeFileSystem(fs string) (string, error) {
	switch strings.ToLower(fs) {
	case "", "ntfs":
		return "NTFS", nil
	case "refs":
		return "ReFS", nil
	}
	return "", fmt.Errorf("invalid file system %q - must be NTFS or ReFS", fs)
}

func csvProvision() {
	utils.LogStartCommand("csv-provision")

	s := utils.ConnectServer()
	defer s.Close()

	open := utils.HostSessions(s)
	data, err := provision(s, open, req, utils.ConfirmUpdate)
	if err != nil {
		utils.LogLookupFailure(err)
		return
	}
	if data == nil {
		utils.LogEndCommand("csv-provision")
		return
	}

	utils.WriteRecords(data, "csv-provision", outputFileName)
	utils.LogEndCommand("csv-provision")
}

// provision runs the lookups and, when confirm allows it, the two remote
// blocks and the cluster refresh. It returns nil data when nothing was changed.
func provision(s *vmmapi.Server, open func(vmmapi.VMHost) (*hostapi.Host, error), r request, confirm func(commandName, change string) bool) ([][]string, error) {
	c, a, err := s.GetCluster(r.cluster)
	utils.LogAPIResp("GetCluster", a)
	if err != nil {
		return nil, err
	}

	vh, a, err := s.GetVMHost(r.host)
	utils.LogAPIResp("GetVMHost", a)
	if err != nil {
		return nil, err
	}
	if !isNode(c, vh) {
		return nil, errors.Errorf("%s is not a node of %s", vh.Name, c.Name)
	}

	h, err := open(vh)
	if err != nil {
		return nil, errors.Wrapf(err, "%s - could not open session", vh.Name)
	}
	defer h.Close()

	disk, a, err := h.GetDiskBySerial(r.serial)
	utils.LogAPIResp("GetDiskBySerial", a)
	if err != nil {
		return nil, err
	}
	utils.LogInfo(fmt.Sprintf("found disk %d (%s, %s GB) with serial number %s on %s", disk.Number, disk.FriendlyName, utils.BytesToGB(disk.Size), disk.SerialNumber, h.Name), true)

	if !confirm("csv-provision", fmt.Sprintf("format disk %d on %s as %s %s and add it to %s as a cluster shared volume", disk.Number, h.Name, r.fileSystem, r.name, c.Name)) {
		return nil, nil
	}

	csv, apiResps, err := h.ProvisionSharedVolume(disk, r.name, r.fileSystem)
	utils.LogMultiAPIResp(apiResps)
	if err != nil {
		return nil, err
	}
	utils.LogInfo(fmt.Sprintf("created cluster shared volume %s at %s", csv.Name, csv.Path), true)

	a, err = s.RefreshCluster(c.Name)
	utils.LogAPIResp("RefreshCluster", a)
	if err != nil {
		utils.LogWarning(fmt.Sprintf("refreshing %s in vmm - %s", c.Name, err), true)
	}

	return [][]string{
		{"cluster_name", "host_name", "serial_number", "disk_number", "volume_name", "path", "state", "owner_node"},
		{c.Name, h.Name, disk.SerialNumber, strconv.Itoa(disk.Number), r.name, csv.Path, csv.State, csv.OwnerNode},
	}, nil
}

func isNode(c vmmapi.Cluster, h vmmapi.VMHost) bool {
	for _, n := range c.Nodes {
		if strings.EqualFold(n, h.Name) || strings.EqualFold(n, h.FQDN) {
			return true
		}
	}
	return false
}
