package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brian1917/vmmtool/vmmapi"
	"github.com/spf13/cobra"
)

// Targets selects the hosts a host-scoped command runs against.
type Targets struct {
	Host     string
	Cluster  string
	HostFile string
}

// AddFlags registers --host, --cluster, and --host-file on cmd.
func (t *Targets) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.Host, "host", "", "name or fqdn of a single host.")
	cmd.Flags().StringVar(&t.Cluster, "cluster", "", "run against every node of the cluster.")
	cmd.Flags().StringVar(&t.HostFile, "host-file", "", "csv file with host names in the first column. a header row is optional.")
}

// Validate requires exactly one of host, cluster, or host file.
func (t Targets) Validate() error {
	n := 0
	for _, v := range []string{t.Host, t.Cluster, t.HostFile} {
		if v != "" {
			n++
		}
	}
	if n == 0 {
		return errors.New("one of --host, --cluster, or --host-file is required")
	}
	if n > 1 {
		return errors.New("only one of --host, --cluster, or --host-file can be used")
	}
	return nil
}

// ResolveHosts looks up the targeted hosts in VMM. The first host or cluster
// that does not exist stops the lookup with a not-found error.
func ResolveHosts(s *vmmapi.Server, t Targets) ([]vmmapi.VMHost, error) {
	switch {
	case t.Host != "":
		h, a, err := s.GetVMHost(t.Host)
		LogAPIResp("GetVMHost", a)
		if err != nil {
			return nil, err
		}
		return []vmmapi.VMHost{h}, nil

	case t.Cluster != "":
		c, a, err := s.GetCluster(t.Cluster)
		LogAPIResp("GetCluster", a)
		if err != nil {
			return nil, err
		}
		hosts, a, err := s.GetClusterHosts(c.Name)
		LogAPIResp("GetClusterHosts", a)
		if err != nil {
			return nil, err
		}
		return hosts, nil

	case t.HostFile != "":
		names, err := hostNamesFromFile(t.HostFile)
		if err != nil {
			return nil, err
		}
		hosts := []vmmapi.VMHost{}
		for _, name := range names {
			h, a, err := s.GetVMHost(name)
			LogAPIResp("GetVMHost", a)
			if err != nil {
				return nil, err
			}
			hosts = append(hosts, h)
		}
		return hosts, nil
	}
	return nil, errors.New("no hosts targeted")
}

func hostNamesFromFile(filename string) ([]string, error) {
	csvData, err := ParseCSV(filename)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for i, row := range csvData {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		name := strings.TrimSpace(row[0])
		if i == 0 {
			switch strings.ToLower(name) {
			case "host", "hostname", "host_name", "name":
				continue
			}
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s has no host names", filename)
	}
	return names, nil
}
