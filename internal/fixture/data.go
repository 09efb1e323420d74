package fixture

import "github.com/MalithGihan/flowseed/pkg/types"

// initial is the sample classification flow the canvas opens with.
var initial = types.Graph{
	Nodes: []types.Node{
		{ID: "0", Label: "顶级", Shape: types.ShapeRect, Width: 60, Height: 32},
		{ID: "1", Label: "次级", Shape: types.ShapeRect, Width: 60, Height: 32},
		{ID: "2", Label: "区分条件", Shape: types.ShapeEllipse, Width: 100, Height: 80},
		{ID: "3", Label: "过滤", Shape: types.ShapeRect, Width: 60, Height: 32},
		{ID: "4", Label: "合格物品", Shape: types.ShapeCircle, Width: 60, Height: 60},
		{ID: "5", Label: "残次品", Shape: types.ShapeCircle, Width: 60, Height: 60},
	},
	Edges: []types.Edge{
		{Source: "0", Target: "1", Label: "下级"},
		{Source: "1", Target: "2", Label: "下级"},
		{Source: "2", Target: "4", Label: "通过"},
		{Source: "2", Target: "3", Label: "未通过"},
		{Source: "3", Target: "5", Label: "未通过"},
		{Source: "3", Target: "4", Label: "通过"},
	},
}

// appended mirrors initial under the 6x id range so both fit on one canvas.
var appended = types.Graph{
	Nodes: []types.Node{
		{ID: "60", Label: "顶级", Shape: types.ShapeRect, Class: "type-top", Description: "这是顶级node"},
		{ID: "61", Label: "次级", Shape: types.ShapeRect, Class: "type-sub-top", Description: "这是次顶级node"},
		{ID: "62", Label: "区分条件", Shape: types.ShapeDiamond, Description: "这是条件node"},
		{ID: "63", Label: "过滤", Shape: types.ShapeRect, Description: "这是过滤node"},
		{ID: "64", Label: "合格物品", Shape: types.ShapeCircle, Description: "这是一个物品"},
		{ID: "65", Label: "残次品", Shape: types.ShapeCircle, Description: "这是一个不好的物品 "},
	},
	Edges: []types.Edge{
		{Source: "60", Target: "61", Label: "下级"},
		{Source: "61", Target: "62", Label: "下级"},
		{Source: "62", Target: "64", Label: "通过"},
		{Source: "62", Target: "63", Label: "未通过"},
		{Source: "63", Target: "65", Label: "未通过"},
		{Source: "63", Target: "64", Label: "通过"},
	},
}

var menu = types.Menu{
	Node: []types.MenuItem{
		{Icon: "el-icon-warning-outline", Label: "详情", Command: types.CommandNodeDetail},
		{Icon: "el-icon-delete", Label: "删除", Command: types.CommandNodeDelete},
		{Icon: "el-icon-connection", Label: "添加edge", Command: types.CommandNodeAddEdge},
		{Icon: "el-icon-link", Label: "添加子node", Command: types.CommandNodeAddNode},
	},
	Edge: []types.MenuItem{
		{Icon: "el-icon-warning-outline", Label: "详情", Command: types.CommandEdgeDetail},
		{Icon: "el-icon-delete", Label: "删除", Command: types.CommandEdgeDelete},
	},
	SVG: []types.MenuItem{
		{Icon: "el-icon-plus", Label: "添加node", Command: types.CommandAddNode},
		{Icon: "el-icon-plus", Label: "添加流程", Command: types.CommandAddFlow},
	},
}
