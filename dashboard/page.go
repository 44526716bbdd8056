// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>County Health Dashboard</title>
<style>
body { font-family: sans-serif; margin: 1em; }
.controls label { margin-right: 1em; }
.county:hover { stroke: #333; stroke-width: 0.5; }
.row { display: flex; align-items: flex-start; gap: 1em; }
#scatter-legend { max-height: 420px; overflow-y: auto; }
#tooltip { position: absolute; display: none; pointer-events: none; background: #fff; border: 1px solid #999; border-radius: 3px; padding: 4px 8px; font-size: 12px; }
.brush-selection { fill: #777; fill-opacity: 0.3; stroke: #333; }
</style>
</head>
<body>
<div class="controls">
{{- range .Controls}}
<label>{{.Label}}
<select id="{{.ID}}">
{{- if .Idle}}
<option value="defaultValue"{{if eq .Selected 0}} selected{{end}}>Select an attribute</option>
{{- end}}
{{- $sel := .Selected}}
{{- range .Attrs}}
<option value="{{.Key}}"{{if eq . $sel}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
</label>
{{- end}}
</div>
<div class="row"><div id="map1"></div></div>
<div class="row"><div id="map2"></div></div>
<div class="row"><div id="histogram"></div></div>
<div class="row"><div id="scatter"></div><div id="scatter-legend"></div></div>
<div id="tooltip"></div>
<script>
const tooltip = document.getElementById('tooltip');

async function refresh(views) {
  for (const v of views) {
    const resp = await fetch('/view/' + v + '.svg');
    document.getElementById(v).innerHTML = await resp.text();
  }
  bind();
}

function bind() {
  for (const map of ['map1', 'map2']) {
    document.querySelectorAll('#' + map + ' .county').forEach(path => {
      path.onmouseenter = async () => {
        const resp = await fetch('/tooltip/' + map + '/' + encodeURIComponent(path.dataset.id));
        if (resp.status !== 200) {
          tooltip.style.display = 'none';
          return;
        }
        const t = await resp.json();
        tooltip.textContent = '';
        const title = document.createElement('b');
        title.textContent = t.title;
        tooltip.append(title, document.createElement('br'), t.value);
        tooltip.style.display = 'block';
      };
      path.onmousemove = e => {
        tooltip.style.left = (e.pageX + 10) + 'px';
        tooltip.style.top = (e.pageY + 10) + 'px';
      };
      path.onmouseleave = () => { tooltip.style.display = 'none'; };
    });
  }

  const overlay = document.querySelector('#scatter .overlay');
  if (!overlay) {
    return;
  }
  let start = null, sel = null;
  const pos = e => {
    const box = overlay.getBoundingClientRect();
    return [e.clientX - box.left, e.clientY - box.top];
  };
  overlay.onmousedown = e => {
    start = pos(e);
    sel = document.createElementNS('http://www.w3.org/2000/svg', 'rect');
    sel.setAttribute('class', 'brush-selection');
    overlay.parentNode.appendChild(sel);
  };
  overlay.onmousemove = e => {
    if (!start) {
      return;
    }
    const [x, y] = pos(e);
    sel.setAttribute('x', Math.min(x, start[0]));
    sel.setAttribute('y', Math.min(y, start[1]));
    sel.setAttribute('width', Math.abs(x - start[0]));
    sel.setAttribute('height', Math.abs(y - start[1]));
  };
  overlay.onmouseup = async e => {
    if (!start) {
      return;
    }
    const [x, y] = pos(e);
    const body = new URLSearchParams({x0: start[0], y0: start[1], x1: x, y1: y});
    start = null;
    sel.remove();
    const resp = await fetch('/brush', {method: 'POST', body});
    if ((await resp.json()).changed) {
      refresh(['scatter']);
    }
  };
}

document.querySelectorAll('.controls select').forEach(sel => {
  sel.addEventListener('change', async () => {
    const body = new URLSearchParams({control: sel.id, attr: sel.value});
    const resp = await fetch('/select', {method: 'POST', body});
    if (resp.ok) {
      refresh((await resp.json()).views);
    }
  });
});

refresh([{{range $i, $v := .Views}}{{if $i}}, {{end}}{{$v}}{{end}}]);
</script>
</body>
</html>
`
