// Package lib provides a Go SDK for tracking tasks programmatically.
//
// This package lets applications (a mobile or web front end, scripts, other
// tools) create and update tasks and export reports without shelling out to
// the tasktracker CLI binary. It shares the storage with the CLI, so both see
// the same task list.
//
// # Quick Start
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	task, _ := client.CreateTask(ctx, "Buy milk")
//	client.SetTaskStatus(ctx, task.ID, lib.TaskStatusOngoing)
//	tasks, _ := client.ListTasks(ctx, nil)
//
// # Storage
//
// The client persists every change to one of these backends:
//
//   - [StorageSQLite]: a SQLite database at [Config].DBPath (default).
//   - [StorageFile]: a tasks.json file inside [Config].DataDir.
//   - [StorageMemory]: nothing is persisted, useful for tests.
//
// Persistence is best effort: a failed save is logged and the in-memory
// change is kept.
//
// # Reports
//
// Export the current tasks as a PDF or Markdown document:
//
//	f, _ := os.Create("task-report.pdf")
//	defer f.Close()
//	info, _ := client.Report(ctx, f, nil)
//	fmt.Println(info.ID, info.Pages)
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: The task does not exist.
//   - [ErrNotValid]: Invalid input (e.g. a blank title or an unknown status).
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines.
package lib
