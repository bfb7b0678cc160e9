// The shared-memory hand-off rides on github.com/ghetzel/shmtool, a cgo
// wrapper over the SysV shm calls, so this command only exists in cgo
// builds.
//go:build cgo

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/ghetzel/shmtool/shm"
	"github.com/gonum/matrix/mat64"

	dfc "github.com/suejin73/dynamic-functional-connectivity"
	"github.com/suejin73/dynamic-functional-connectivity/internal/io"
)

func main() {
	manifestPath := flag.String("manifest", "", "cohort manifest (yaml)")
	wl := flag.Int("wl", 0, "window length in timepoints (0 takes the manifest value, then the library default)")
	workers := flag.Int("workers", 0, "concurrent subjects (0 takes the manifest value, then 1)")
	subject := flag.String("subject", "", "subject whose window stack to export, by id or index (default first)")
	consumer := flag.String("exec", "", "consumer to run against the segments; gets NVID NSUBJ WINID NWIN NROI as arguments")
	flag.Parse()

	if *manifestPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	m, err := io.LoadManifest(*manifestPath)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	opts := dfc.Options{WindowLength: m.Window, Workers: m.Workers}
	if *wl != 0 {
		opts.WindowLength = *wl
	}
	if *workers != 0 {
		opts.Workers = *workers
	}

	cohort, ids, err := m.LoadCohort(opts.Workers)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	res, err := dfc.ComputeDynamicFC(cohort, opts)
	if err != nil {
		log.Fatalf("[ERROR] %s", err)
	}

	subj := pickSubject(ids, *subject)
	stack := res.WinFC[subj]
	rois := cohort.ROIs()

	numWin, err := exportableWindows(stack)
	if err != nil {
		log.Fatalf("[ERROR] subject %s: %s", ids[subj], err)
	}

	nvShm, err := shm.Create(len(ids) * 8)
	if err != nil {
		log.Fatalf("[ERROR] failed to create shared memory region: %s", err)
	}

	winShm, err := shm.Create(numWin * rois * rois * 8)
	if err != nil {
		log.Fatalf("[ERROR] failed to create shared memory region: %s", err)
	}

	pNV, err := nvShm.Attach()
	if err != nil {
		log.Fatalf("[ERROR] failed to attach shared memory region: %s", err)
	}

	pWin, err := winShm.Attach()
	if err != nil {
		log.Fatalf("[ERROR] failed to attach shared memory region: %s", err)
	}

	f64SliceToShm(res.NV, pNV, 0)
	stackToShm(stack, pWin)

	fmt.Printf("nv: shmid %d, %d float64\n", nvShm.Id, len(ids))
	fmt.Printf("winfc[%s]: shmid %d, %d x %d x %d float64, row-major\n", ids[subj], winShm.Id, numWin, rois, rois)

	if *consumer != "" {
		cmd := exec.Command(*consumer,
			fmt.Sprintf("%d", nvShm.Id), fmt.Sprintf("%d", len(ids)),
			fmt.Sprintf("%d", winShm.Id), fmt.Sprintf("%d", numWin), fmt.Sprintf("%d", rois))
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			log.Fatalf("[ERROR] consumer failed: %s", err)
		}
	}

	nvShm.Detach(pNV)
	winShm.Detach(pWin)

	// Without a consumer the segments must outlive this process so a
	// later reader can attach by id; that reader removes them.
	if *consumer != "" {
		nvShm.Destroy()
		winShm.Destroy()
	}

	return
}

func pickSubject(ids []string, ref string) int {
	if ref == "" {
		return 0
	}

	for i, id := range ids {
		if id == ref {
			return i
		}
	}

	i, err := strconv.Atoi(ref)
	if err != nil || i < 0 || i >= len(ids) {
		log.Fatalf("[ERROR] no subject %q in cohort", ref)
	}

	return i
}

// exportableWindows rejects an empty window stack before any shared
// memory segment exists; shm.Create cannot size a zero-byte region.
func exportableWindows(stack []*mat64.Dense) (int, error) {
	if len(stack) == 0 {
		return 0, fmt.Errorf("no windows to export: the window spans the whole series")
	}

	return len(stack), nil
}
