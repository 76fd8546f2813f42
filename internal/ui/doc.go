// Package ui is the filedeck shell: a Bubble Tea composition of the file
// list, the reorderable sidebar, and the floating panels driven by the
// interaction engine.
//
// Core pieces:
//   - View: a major UI region with its own model, update, view (Elm-style)
//   - AppModel: root model routing key/mouse events to views and panels
//   - PanelView: renders one floating panel from its controller's geometry
//   - SidebarView: collapsible sections backed by the reorder controller
//   - FilesView: directory listing publishing selection-change events
//
// Mouse events are translated into the engine's gesture operations here;
// the engine packages themselves never see Bubble Tea types.
package ui
